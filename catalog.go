package geofmt

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// coreCatalog declares the built-in driver set. Registration order follows
// the conventional raster-then-vector order; in particular GMT is declared
// before NETCDF, which the resolver compensates for.
//
//go:embed drivers.yml
var coreCatalog []byte

// catalog is the on-disk form of a driver catalog.
type catalog struct {
	Drivers []*DriverInfo `yaml:"drivers"`
}

// LoadCatalog reads a YAML driver catalog and returns a registry containing
// its drivers in declaration order.
//
// A catalog is a document with a single "drivers" list:
//
//	drivers:
//	  - short_name: GTiff
//	    long_name: GeoTIFF
//	    extensions: [tif, tiff]
//	    raster: true
//	    create: true
//	    create_copy: true
func LoadCatalog(r io.Reader) (*MemoryRegistry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geofmt: read driver catalog: %w", err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	if len(c.Drivers) == 0 {
		return nil, fmt.Errorf("%w: no drivers declared", ErrInvalidCatalog)
	}

	reg := NewMemoryRegistry()
	for _, d := range c.Drivers {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// NewCoreRegistry returns a registry preloaded with the built-in driver
// catalog. Each call returns an independent registry, so callers may extend
// it with Register without affecting others.
func NewCoreRegistry() *MemoryRegistry {
	reg, err := LoadCatalog(bytes.NewReader(coreCatalog))
	if err != nil {
		// The embedded catalog is validated by tests; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return reg
}
