package sqlscript

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// writeScript writes content to dir/name, compressing it according to the
// file name's suffix.
func writeScript(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	var buf bytes.Buffer
	switch detectCompression(name) {
	case compressionNone:
		buf.Write(content)
	case compressionGZ:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case compressionXZ:
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case compressionZSTD:
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		t.Fatalf("no writer available for %s", name)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	const script = "SELECT name FROM places -- all names\nWHERE pop > 1000"

	tests := []struct {
		name     string
		fileName string
	}{
		{name: "plain file", fileName: "query.sql"},
		{name: "gzip file", fileName: "query.sql.gz"},
		{name: "xz file", fileName: "query.sql.xz"},
		{name: "zstd file", fileName: "query.sql.zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeScript(t, t.TempDir(), tt.fileName, []byte(script))
			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, script, got, "comments must survive ReadFile")
		})
	}

	t.Run("leading BOM is stripped", func(t *testing.T) {
		t.Parallel()

		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("SELECT 1")...)
		path := writeScript(t, t.TempDir(), "bom.sql", content)

		got, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1", got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(filepath.Join(t.TempDir(), "absent.sql"))
		require.Error(t, err)
	})

	t.Run("corrupt gzip data", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.sql.gz")
		require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0600))

		_, err := ReadFile(path)
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("strips comments from a compressed script with BOM", func(t *testing.T) {
		t.Parallel()

		script := append([]byte{0xEF, 0xBB, 0xBF},
			[]byte("-- header comment\nSELECT name FROM places -- all names\nWHERE pop > 1000")...)
		path := writeScript(t, t.TempDir(), "query.sql.gz", script)

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, " SELECT name FROM places  WHERE pop > 1000 ", got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "absent.sql"))
		require.Error(t, err)
	})
}

func TestDetectCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		expect compressionType
	}{
		{"query.sql", compressionNone},
		{"query.sql.gz", compressionGZ},
		{"query.SQL.GZ", compressionGZ},
		{"query.sql.bz2", compressionBZ2},
		{"query.sql.xz", compressionXZ},
		{"query.sql.zst", compressionZSTD},
		{"gz", compressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expect, detectCompression(tt.path))
		})
	}
}
