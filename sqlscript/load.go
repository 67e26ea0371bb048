package sqlscript

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionType represents the compression applied to a script file
type compressionType int

const (
	// compressionNone represents an uncompressed script
	compressionNone compressionType = iota
	// compressionGZ represents gzip compression
	compressionGZ
	// compressionBZ2 represents bzip2 compression
	compressionBZ2
	// compressionXZ represents xz compression
	compressionXZ
	// compressionZSTD represents zstandard compression
	compressionZSTD
)

// Compression extensions
const (
	extGZ   = ".gz"
	extBZ2  = ".bz2"
	extXZ   = ".xz"
	extZSTD = ".zst"
)

// detectCompression determines the compression type from a file path.
func detectCompression(path string) compressionType {
	path = strings.ToLower(path)

	switch {
	case strings.HasSuffix(path, extGZ):
		return compressionGZ
	case strings.HasSuffix(path, extBZ2):
		return compressionBZ2
	case strings.HasSuffix(path, extXZ):
		return compressionXZ
	case strings.HasSuffix(path, extZSTD):
		return compressionZSTD
	default:
		return compressionNone
	}
}

// newDecompressor wraps reader with a decompression reader for the given
// compression type. The returned cleanup function releases any resources
// held by the wrapper.
func newDecompressor(ct compressionType, reader io.Reader) (io.Reader, func() error, error) {
	switch ct {
	case compressionNone:
		return reader, func() error { return nil }, nil

	case compressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case compressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case compressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case compressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type: %v", ct)
	}
}

// ReadFile reads a script file, decompressing it if its name carries a
// .gz, .bz2, .xz, or .zst suffix, and strips a leading UTF-8 byte order
// mark. Comments are kept; use Load when they should be stripped too.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // script path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("failed to open script file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader, cleanup, err := newDecompressor(detectCompression(path), file)
	if err != nil {
		return "", err
	}
	defer func() { _ = cleanup() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read script file: %w", err)
	}
	return string(TrimBOM(data)), nil
}

// Load reads a script file like ReadFile and additionally strips SQL line
// comments, returning the script as a single space-joined line.
func Load(path string) (string, error) {
	script, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return StripComments(script), nil
}
