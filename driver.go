package geofmt

import "strings"

// OutputType is a bitmask selecting which kind of output a caller wants to
// produce. Raster and vector may be combined.
type OutputType int

const (
	// RasterOutput requests drivers that can write raster data
	RasterOutput OutputType = 1 << iota
	// VectorOutput requests drivers that can write vector data
	VectorOutput
)

// DefaultRasterDriver is the driver used for raster destinations without an
// extension when no registered driver claims them.
const DefaultRasterDriver = "GTiff"

// DriverInfo describes one format driver as seen by the resolver. It is
// read-only metadata; the driver implementation itself lives outside this
// package.
type DriverInfo struct {
	// ShortName is the driver identifier (e.g. "GTiff", "GPKG")
	ShortName string `yaml:"short_name"`

	// LongName is the human-readable format name
	LongName string `yaml:"long_name,omitempty"`

	// Extensions lists the filename extensions the driver recognizes,
	// without leading dots. Compound extensions such as "shp.zip" are
	// single tokens.
	Extensions []string `yaml:"extensions,omitempty"`

	// ConnectionPrefix identifies the driver by destination prefix
	// (e.g. "PG:") independent of any file extension
	ConnectionPrefix string `yaml:"connection_prefix,omitempty"`

	// Raster reports whether the driver handles raster data
	Raster bool `yaml:"raster,omitempty"`

	// Vector reports whether the driver handles vector data
	Vector bool `yaml:"vector,omitempty"`

	// Create reports whether the driver supports dataset creation
	Create bool `yaml:"create,omitempty"`

	// CreateCopy reports whether the driver supports creation by copying
	// an existing dataset
	CreateCopy bool `yaml:"create_copy,omitempty"`

	// VectorTranslateFrom reports the weaker capability of converting
	// vector data from another format, sufficient for translation but not
	// for general creation
	VectorTranslateFrom bool `yaml:"vector_translate_from,omitempty"`
}

// HandlesExtension reports whether ext is one of the driver's recognized
// extensions. The comparison is case-insensitive and matches whole tokens,
// never substrings.
func (d *DriverInfo) HandlesExtension(ext string) bool {
	for _, e := range d.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// supportsOutput reports whether the driver can produce the requested kind
// of output. Creation (or creation by copy) combined with the matching
// raster/vector capability qualifies; for vector output, translate-from
// support alone also qualifies.
func (d *DriverInfo) supportsOutput(want OutputType) bool {
	if (d.Create || d.CreateCopy) &&
		((want&RasterOutput != 0 && d.Raster) || (want&VectorOutput != 0 && d.Vector)) {
		return true
	}
	return d.VectorTranslateFrom && want&VectorOutput != 0
}
