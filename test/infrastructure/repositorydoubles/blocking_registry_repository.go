//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

// BlockingRegistryRepository implements repositories.RegistryRepository with
// lookups that never answer: each one waits for its context to end. It records
// how many lookups were in flight at the same time.
type BlockingRegistryRepository struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	calls    int
}

var _ repositories.RegistryRepository = (*BlockingRegistryRepository)(nil)

func (b *BlockingRegistryRepository) Name() string { return "blocking" }

func (b *BlockingRegistryRepository) LatestVersion(
	ctx context.Context,
	name string,
) (entities.SemanticVersion, error) {
	b.mu.Lock()
	b.calls++
	b.inFlight++
	b.peak = max(b.peak, b.inFlight)
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.inFlight--
		b.mu.Unlock()
	}()

	<-ctx.Done()
	return entities.SemanticVersion{}, fmt.Errorf("%w: %s: %w", entities.ErrRegistryUnavailable, name, ctx.Err())
}

// PeakInFlight returns the highest number of concurrent lookups seen.
func (b *BlockingRegistryRepository) PeakInFlight() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.peak
}

// Calls returns the number of lookups started.
func (b *BlockingRegistryRepository) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}
