// Package packagejson reads dependency groups from an npm package.json.
package packagejson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

const manifestFile = "package.json"

// packageJSON keeps the dependency groups raw so their shape can be checked.
type packageJSON struct {
	Name            string          `json:"name"`
	Dependencies    json.RawMessage `json:"dependencies"`
	DevDependencies json.RawMessage `json:"devDependencies"`
}

// ManifestRepository reads package.json files from disk.
type ManifestRepository struct{}

// NewManifestRepository creates a package.json reader.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// Read loads path, or path/package.json when path is a directory.
func (r *ManifestRepository) Read(_ context.Context, path string) (*entities.Manifest, error) {
	manifestPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", manifestPath, err)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}
	manifest.Path = manifestPath
	return manifest, nil
}

// Parse decodes package.json content. A missing or null group is nil; a group
// that is not an object is ErrMalformedManifest. Values that are not strings
// are kept as their JSON text so the version parser reports them per entry.
func Parse(data []byte) (*entities.Manifest, error) {
	var raw packageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrMalformedManifest, err)
	}

	runtime, err := decodeGroup("dependencies", raw.Dependencies)
	if err != nil {
		return nil, err
	}
	development, err := decodeGroup("devDependencies", raw.DevDependencies)
	if err != nil {
		return nil, err
	}

	return &entities.Manifest{
		Name:        raw.Name,
		Runtime:     runtime,
		Development: development,
	}, nil
}

func decodeGroup(field string, raw json.RawMessage) (map[string]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil //nolint:nilnil // an absent group is an empty group
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: %q must be an object", entities.ErrMalformedManifest, field)
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", entities.ErrMalformedManifest, field, err)
	}

	group := make(map[string]string, len(values))
	for name, value := range values {
		var version string
		if err := json.Unmarshal(value, &version); err != nil {
			version = string(bytes.TrimSpace(value))
		}
		group[name] = version
	}
	return group, nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("manifest not found: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(path, manifestFile), nil
	}
	return path, nil
}
