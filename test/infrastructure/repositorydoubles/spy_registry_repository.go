//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

// SpyRegistryRepository implements repositories.RegistryRepository as a configurable spy.
// It is safe for concurrent use, like the worker pool that calls it.
type SpyRegistryRepository struct {
	// --- identity ---
	RegistryName string

	// --- LatestVersion ---
	Versions map[string]string // name -> published version
	Errors   map[string]error  // name -> error to return

	mu           sync.Mutex
	LookedUp     []string // spy: names requested, in call order
	lookupCounts map[string]int
}

var _ repositories.RegistryRepository = (*SpyRegistryRepository)(nil)

func (s *SpyRegistryRepository) Name() string {
	if s.RegistryName == "" {
		return "spy"
	}
	return s.RegistryName
}

func (s *SpyRegistryRepository) LatestVersion(
	_ context.Context,
	name string,
) (entities.SemanticVersion, error) {
	s.mu.Lock()
	s.LookedUp = append(s.LookedUp, name)
	if s.lookupCounts == nil {
		s.lookupCounts = make(map[string]int)
	}
	s.lookupCounts[name]++
	s.mu.Unlock()

	if err, ok := s.Errors[name]; ok {
		return entities.SemanticVersion{}, err
	}
	version, ok := s.Versions[name]
	if !ok {
		return entities.SemanticVersion{}, fmt.Errorf("%w: %s", entities.ErrPackageNotFound, name)
	}
	return entities.ParseVersion(version)
}

// LookupCount returns how many times name was looked up.
func (s *SpyRegistryRepository) LookupCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupCounts[name]
}

// TotalLookups returns the number of lookups performed.
func (s *SpyRegistryRepository) TotalLookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.LookedUp)
}
