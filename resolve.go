package geofmt

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Resolver picks output format drivers for destination paths by querying a
// Registry. It re-enumerates the registry on every call and caches nothing.
type Resolver struct {
	registry Registry
	logger   *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics. The default
// discards them.
func WithLogger(logger *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver backed by the given registry.
func NewResolver(reg Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: reg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OutputDriversFor returns the short names of every registered driver that
// could produce the requested kind of output at dest, in registry order.
//
// A driver matches when it supports the requested output kind and either
// recognizes the destination's extension or claims the destination through
// its connection prefix. Destinations ending in ".shp.zip" or ".gpkg.zip"
// match on those compound extensions rather than the generic "zip".
//
// An empty result is not an error; the caller decides how to react.
func (r *Resolver) OutputDriversFor(dest string, want OutputType) []string {
	ext := destExtension(dest)

	var drivers []string
	for i := 0; i < r.registry.Count(); i++ {
		d := r.registry.Driver(i)
		if d == nil || !d.supportsOutput(want) {
			continue
		}
		if ext != "" && d.HandlesExtension(ext) {
			drivers = append(drivers, d.ShortName)
		} else if d.ConnectionPrefix != "" && hasPrefixFold(dest, d.ConnectionPrefix) {
			drivers = append(drivers, d.ShortName)
		}
	}

	// GMT is registered before NETCDF for opening reasons, but NETCDF is
	// the preferred default for .nc output.
	if strings.EqualFold(ext, "nc") && len(drivers) == 2 &&
		strings.EqualFold(drivers[0], "GMT") && strings.EqualFold(drivers[1], "NETCDF") {
		drivers[0], drivers[1] = "NETCDF", "GMT"
	}

	return drivers
}

// OutputDriverForRaster resolves the single output driver to use for a
// raster destination.
//
// With no candidates, an extensionless destination falls back to
// DefaultRasterDriver; a destination with an extension yields an empty name
// and an error wrapping ErrCannotDetermineDriver. With several candidates
// the first one wins, with a warning unless the candidates start with the
// compatible GTiff/COG pair.
func (r *Resolver) OutputDriverForRaster(dest string) (string, error) {
	drivers := r.OutputDriversFor(dest, RasterOutput)
	ext := extension(dest)

	if len(drivers) == 0 {
		if ext == "" {
			r.logger.Debug("using driver", zap.String("driver", DefaultRasterDriver))
			return DefaultRasterDriver, nil
		}
		r.logger.Error("cannot determine output driver", zap.String("destination", dest))
		return "", fmt.Errorf("%w for %s", ErrCannotDetermineDriver, dest)
	}

	if len(drivers) > 1 && !(drivers[0] == "GTiff" && drivers[1] == "COG") {
		r.logger.Warn("several drivers match extension",
			zap.String("extension", ext),
			zap.String("driver", drivers[0]))
	}

	r.logger.Debug("using driver", zap.String("driver", drivers[0]))
	return drivers[0], nil
}

// destExtension returns the extension used for driver matching: the text
// after the last dot of the final path component, except that ".shp.zip"
// and ".gpkg.zip" destinations match on the compound extension.
func destExtension(dest string) string {
	ext := extension(dest)
	if strings.EqualFold(ext, "zip") {
		lower := strings.ToLower(dest)
		switch {
		case strings.HasSuffix(lower, ".shp.zip"):
			return "shp.zip"
		case strings.HasSuffix(lower, ".gpkg.zip"):
			return "gpkg.zip"
		}
	}
	return ext
}

// extension returns the text after the last dot of the final path component
// of dest, or "" if that component has no dot. Both slash styles are
// treated as path separators so that dots in directory names are ignored.
func extension(dest string) string {
	for i := len(dest) - 1; i >= 0; i-- {
		switch dest[i] {
		case '.':
			return dest[i+1:]
		case '/', '\\':
			return ""
		}
	}
	return ""
}

// hasPrefixFold reports whether s starts with prefix, case-insensitively.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
