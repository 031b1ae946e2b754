// Package npm looks up latest versions through the npm registry HTTP API.
package npm

import (
	"context"
	"errors"
	"fmt"

	"github.com/git-pkgs/registries"
	_ "github.com/git-pkgs/registries/all" // registers the npm ecosystem

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/skewcheck/internal/domain/repositories"
)

const (
	// Name is the registry type selecting this implementation.
	Name      = "npm"
	ecosystem = "npm"

	distTagsKey = "dist-tags"
	latestKey   = "latest"
)

// RegistryRepository reads the "latest" dist-tag of npm packages.
type RegistryRepository struct {
	registry registries.Registry
}

// NewRegistryRepository creates an npm registry client. An empty cfg.URL
// targets the public registry.
func NewRegistryRepository(cfg entities.RegistryConfig) (domainRepos.RegistryRepository, error) {
	client := registries.NewClient(
		registries.WithTimeout(cfg.Timeout),
		registries.WithMaxRetries(cfg.MaxRetries),
	)

	registry, err := registries.New(ecosystem, cfg.URL, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create npm registry client: %w", err)
	}

	return &RegistryRepository{registry: registry}, nil
}

func (r *RegistryRepository) Name() string { return Name }

// LatestVersion fetches the package document and parses its "latest" dist-tag.
func (r *RegistryRepository) LatestVersion(
	ctx context.Context,
	name string,
) (entities.SemanticVersion, error) {
	pkg, err := r.registry.FetchPackage(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return entities.SemanticVersion{}, fmt.Errorf("%w: %s: %w", entities.ErrPackageNotFound, name, err)
		}
		return entities.SemanticVersion{}, fmt.Errorf("%w: %s: %w", entities.ErrRegistryUnavailable, name, err)
	}

	latest := latestTag(pkg)
	if latest == "" {
		return entities.SemanticVersion{}, fmt.Errorf(
			"%w: %s has no latest dist-tag", entities.ErrPackageNotFound, name,
		)
	}

	return entities.ParseVersion(latest)
}

// latestTag reads dist-tags.latest from the package metadata.
func latestTag(pkg *registries.Package) string {
	if pkg == nil {
		return ""
	}
	tags, ok := pkg.Metadata[distTagsKey].(map[string]string)
	if !ok {
		return ""
	}
	return tags[latestKey]
}

func isNotFound(err error) bool {
	if errors.Is(err, registries.ErrNotFound) {
		return true
	}

	var notFound *registries.NotFoundError
	if errors.As(err, &notFound) {
		return true
	}

	var httpErr *registries.HTTPError
	return errors.As(err, &httpErr) && httpErr.IsNotFound()
}
