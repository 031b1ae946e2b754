//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with a fixed answer.
type StubManifestRepository struct {
	Manifest *entities.Manifest
	ReadErr  error
	// spy: paths requested
	ReadPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Read(_ context.Context, path string) (*entities.Manifest, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if s.Manifest == nil {
		return &entities.Manifest{Path: path}, nil
	}
	manifest := *s.Manifest
	if manifest.Path == "" {
		manifest.Path = path
	}
	return &manifest, nil
}
