package repositories

import (
	"context"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

// RegistryRepository abstracts a package registry that publishes versions.
// Implementations must return errors wrapping entities.ErrPackageNotFound or
// entities.ErrRegistryUnavailable so callers can tell the two apart.
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "npm", "npm-cli").
	Name() string

	// LatestVersion returns the latest published version of the package.
	LatestVersion(ctx context.Context, name string) (entities.SemanticVersion, error)
}
