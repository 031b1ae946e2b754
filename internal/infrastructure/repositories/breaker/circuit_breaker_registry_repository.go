// Package breaker guards a registry with a circuit breaker so that an
// unreachable registry fails the remaining lookups fast.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

const (
	initialInterval = 30 * time.Second
	maxInterval     = 5 * time.Minute
)

// RegistryRepository wraps another registry with a consecutive-failure breaker.
// Only ErrRegistryUnavailable counts as a failure; a package the registry
// does not know is a valid answer.
type RegistryRepository struct {
	inner   domainRepos.RegistryRepository
	breaker *circuit.Breaker
}

// NewRegistryRepository wraps inner with a breaker that opens after
// tripAfter consecutive failures.
func NewRegistryRepository(inner domainRepos.RegistryRepository, tripAfter int) *RegistryRepository {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = initialInterval
	expBackoff.MaxInterval = maxInterval
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	return &RegistryRepository{
		inner: inner,
		breaker: circuit.NewBreakerWithOptions(&circuit.Options{
			BackOff:    expBackoff,
			ShouldTrip: circuit.ConsecutiveTripFunc(int64(tripAfter)),
		}),
	}
}

func (r *RegistryRepository) Name() string { return r.inner.Name() }

// LatestVersion delegates to the wrapped registry unless the breaker is open.
func (r *RegistryRepository) LatestVersion(
	ctx context.Context,
	name string,
) (entities.SemanticVersion, error) {
	if !r.breaker.Ready() {
		return entities.SemanticVersion{}, fmt.Errorf(
			"%w: circuit breaker open for %s, skipping %s", entities.ErrRegistryUnavailable, r.inner.Name(), name,
		)
	}

	var (
		version   entities.SemanticVersion
		lookupErr error
	)
	err := r.breaker.Call(func() error {
		version, lookupErr = r.inner.LatestVersion(ctx, name)
		if errors.Is(lookupErr, entities.ErrRegistryUnavailable) {
			return lookupErr
		}
		return nil
	}, 0)

	if errors.Is(err, circuit.ErrBreakerOpen) {
		return entities.SemanticVersion{}, fmt.Errorf("%w: %w", entities.ErrRegistryUnavailable, err)
	}
	if r.breaker.Tripped() {
		logger.Warnf("[%s] Registry keeps failing, remaining lookups will be skipped", r.inner.Name())
	}
	if lookupErr != nil {
		return entities.SemanticVersion{}, lookupErr
	}
	return version, nil
}
