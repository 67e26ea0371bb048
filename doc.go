// Package geofmt resolves which output format driver a geospatial
// command-line tool should use for a given destination path.
//
// Format drivers are described by metadata (short name, recognized file
// extensions, connection prefix, raster/vector and creation capabilities)
// and enumerated through a Registry. Given a destination path and the kind
// of output requested, a Resolver ranks every matching driver and, for the
// common raster case, picks one.
//
// # Basic Usage
//
// Resolve the output driver for a raster destination against the built-in
// driver catalog:
//
//	resolver := geofmt.NewResolver(geofmt.NewCoreRegistry())
//	driver, err := resolver.OutputDriverForRaster("elevation.tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(driver) // "GTiff"
//
// When both raster and vector drivers are acceptable, enumerate candidates
// instead:
//
//	drivers := resolver.OutputDriversFor("parcels.gpkg", geofmt.RasterOutput|geofmt.VectorOutput)
//
// # Driver Catalogs
//
// NewCoreRegistry returns a registry preloaded with the common driver set.
// Custom driver catalogs can be declared in YAML and loaded with
// LoadCatalog, or registered programmatically on a MemoryRegistry:
//
//	reg := geofmt.NewMemoryRegistry()
//	err := reg.Register(&geofmt.DriverInfo{
//	    ShortName:  "GTiff",
//	    Extensions: []string{"tif", "tiff"},
//	    Raster:     true,
//	    Create:     true,
//	    CreateCopy: true,
//	})
//
// # Startup Configuration
//
// Config carries process-wide configuration options. Its Prescan method
// recognizes --config KEY VALUE and --debug VALUE arguments ahead of full
// command-line processing, which matters because full processing needs the
// driver registry to already be populated:
//
//	cfg := geofmt.NewConfig()
//	cfg.Prescan(os.Args[1:])
//	reg := geofmt.NewCoreRegistry()
//
// The sqlscript subpackage provides the SQL script helpers (comment
// stripping, BOM removal, script file loading) used alongside driver
// resolution in the surrounding tools.
package geofmt
