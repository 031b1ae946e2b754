//go:build unit

package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/breaker"
	doubles "github.com/rios0rios0/skewcheck/test/infrastructure/repositorydoubles"
)

func TestRegistryFactory(t *testing.T) {
	t.Parallel()

	t.Run("should return the registered registry without a breaker", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyRegistryRepository{}
		factory := repositories.NewRegistryFactory()
		factory.Register("spy", func(_ entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
			return spy, nil
		})

		// when
		registry, err := factory.Get(entities.RegistryConfig{Type: "spy"})

		// then
		require.NoError(t, err)
		assert.Same(t, spy, registry)
	})

	t.Run("should wrap the registry in a breaker when TripAfter is set", func(t *testing.T) {
		t.Parallel()

		// given
		factory := repositories.NewRegistryFactory()
		factory.Register("spy", func(_ entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
			return &doubles.SpyRegistryRepository{}, nil
		})

		// when
		registry, err := factory.Get(entities.RegistryConfig{Type: "spy", TripAfter: 3})

		// then
		require.NoError(t, err)
		assert.IsType(t, &breaker.RegistryRepository{}, registry)
	})

	t.Run("should fail for an unknown type and list the known ones", func(t *testing.T) {
		t.Parallel()

		// given
		factory := repositories.NewRegistryFactory()
		factory.Register("npm", nil)
		factory.Register("npm-cli", nil)

		// when
		registry, err := factory.Get(entities.RegistryConfig{Type: "yarn"})

		// then
		require.Error(t, err)
		assert.Nil(t, registry)
		assert.Contains(t, err.Error(), `"yarn"`)
		assert.Equal(t, []string{"npm", "npm-cli"}, factory.Names())
	})

	t.Run("should return the constructor error", func(t *testing.T) {
		t.Parallel()

		// given
		factory := repositories.NewRegistryFactory()
		factory.Register("broken", func(_ entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
			return nil, errors.New("npm executable not found")
		})

		// when
		_, err := factory.Get(entities.RegistryConfig{Type: "broken", TripAfter: 1})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "npm executable not found")
	})
}
