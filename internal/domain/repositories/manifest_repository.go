package repositories

import (
	"context"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

// ManifestRepository reads the declared dependencies of a project.
type ManifestRepository interface {
	// Read loads the manifest at path. A path pointing at a directory is
	// resolved to the manifest file inside it. A dependency group that is
	// present but not an object yields entities.ErrMalformedManifest.
	Read(ctx context.Context, path string) (*entities.Manifest, error)
}
