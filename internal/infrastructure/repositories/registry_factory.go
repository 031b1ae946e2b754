package repositories

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/breaker"
)

// RegistryConstructor builds a RegistryRepository from its configuration.
type RegistryConstructor func(cfg entities.RegistryConfig) (domainRepos.RegistryRepository, error)

// RegistryFactory manages all registered registry implementations.
type RegistryFactory struct {
	constructors map[string]RegistryConstructor
}

// NewRegistryFactory creates an empty registry factory.
func NewRegistryFactory() *RegistryFactory {
	return &RegistryFactory{
		constructors: make(map[string]RegistryConstructor),
	}
}

// Register adds a registry constructor under the given name (e.g. "npm").
func (r *RegistryFactory) Register(name string, constructor RegistryConstructor) {
	r.constructors[name] = constructor
}

// Get returns a configured registry for cfg.Type. When cfg.TripAfter is
// positive the registry is guarded by a circuit breaker.
func (r *RegistryFactory) Get(cfg entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
	constructor, ok := r.constructors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown registry type: %q (available: %v)", cfg.Type, r.Names())
	}

	registry, err := constructor(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.TripAfter > 0 {
		return breaker.NewRegistryRepository(registry, cfg.TripAfter), nil
	}
	return registry, nil
}

// Names returns the sorted list of registered registry names.
func (r *RegistryFactory) Names() []string {
	return slices.Sorted(maps.Keys(r.constructors))
}
