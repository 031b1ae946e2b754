package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
	npmRepo "github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/npm"
	npmcliRepo "github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/npmcli"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/packagejson"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register registry factory with all registry implementations
	if err := container.Provide(func() *RegistryFactory {
		factory := NewRegistryFactory()
		factory.Register(npmRepo.Name, npmRepo.NewRegistryRepository)
		factory.Register(npmcliRepo.Name, npmcliRepo.NewRegistryRepository)
		return factory
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ManifestRepository {
		return packagejson.NewManifestRepository()
	}); err != nil {
		return err
	}

	return nil
}
