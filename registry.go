package geofmt

import (
	"fmt"
	"strings"
)

// Registry enumerates the format drivers known to the process. The resolver
// consumes only this interface, so tests and embedders can supply fabricated
// driver sets.
//
// A Registry is assumed not to be mutated while a resolution call is in
// progress; this package performs no locking.
type Registry interface {
	// Count returns the number of registered drivers
	Count() int

	// Driver returns the driver at index i in registration order.
	// It returns nil if i is out of range.
	Driver(i int) *DriverInfo
}

// MemoryRegistry is an in-memory Registry that preserves registration order.
// The zero value is ready to use.
type MemoryRegistry struct {
	drivers []*DriverInfo
	byName  map[string]*DriverInfo
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		byName: make(map[string]*DriverInfo),
	}
}

// Register adds a driver to the registry. Short names are unique
// case-insensitively; registering a duplicate returns ErrDuplicateDriver.
func (r *MemoryRegistry) Register(info *DriverInfo) error {
	if info == nil || info.ShortName == "" {
		return fmt.Errorf("%w: missing short name", ErrInvalidCatalog)
	}
	if r.byName == nil {
		r.byName = make(map[string]*DriverInfo)
	}
	key := strings.ToLower(info.ShortName)
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDriver, info.ShortName)
	}
	r.byName[key] = info
	r.drivers = append(r.drivers, info)
	return nil
}

// Count returns the number of registered drivers.
func (r *MemoryRegistry) Count() int {
	return len(r.drivers)
}

// Driver returns the driver at index i in registration order.
func (r *MemoryRegistry) Driver(i int) *DriverInfo {
	if i < 0 || i >= len(r.drivers) {
		return nil
	}
	return r.drivers[i]
}

// ByName returns the driver with the given short name, or nil if none is
// registered. The lookup is case-insensitive.
func (r *MemoryRegistry) ByName(name string) *DriverInfo {
	return r.byName[strings.ToLower(name)]
}

// ShortNames returns the short names of all registered drivers in
// registration order.
func (r *MemoryRegistry) ShortNames() []string {
	names := make([]string, 0, len(r.drivers))
	for _, d := range r.drivers {
		names = append(names, d.ShortName)
	}
	return names
}
