//go:build unit

package packagejson_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/packagejson"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should read both dependency groups", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{
			"name": "web",
			"dependencies": {"react": "^18.2.0", "lodash": "4.17.21"},
			"devDependencies": {"jest": "^29.0.0"}
		}`)

		// when
		manifest, err := packagejson.Parse(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, "web", manifest.Name)
		assert.Equal(t, map[string]string{"react": "^18.2.0", "lodash": "4.17.21"}, manifest.Runtime)
		assert.Equal(t, map[string]string{"jest": "^29.0.0"}, manifest.Development)
	})

	t.Run("should treat absent or null groups as empty", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"name": "bare", "devDependencies": null}`)

		// when
		manifest, err := packagejson.Parse(data)

		// then
		require.NoError(t, err)
		assert.Empty(t, manifest.Runtime)
		assert.Empty(t, manifest.Development)
	})

	t.Run("should fail when a group is not an object", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"dependencies": ["react"]}`)

		// when
		manifest, err := packagejson.Parse(data)

		// then
		require.Error(t, err)
		assert.Nil(t, manifest)
		assert.ErrorIs(t, err, entities.ErrMalformedManifest)
		assert.Contains(t, err.Error(), "dependencies")
	})

	t.Run("should fail on invalid JSON", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"dependencies": `)

		// when
		_, err := packagejson.Parse(data)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrMalformedManifest)
	})

	t.Run("should keep non-string values as JSON text", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"dependencies": {"weird": 42, "odd": {"version": "1.0.0"}}}`)

		// when
		manifest, err := packagejson.Parse(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, "42", manifest.Runtime["weird"])
		assert.JSONEq(t, `{"version": "1.0.0"}`, manifest.Runtime["odd"])
	})
}

func TestManifestRepositoryRead(t *testing.T) {
	t.Parallel()

	t.Run("should read package.json from a directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "package.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"dependencies": {"left-pad": "^1.0.0"}}`), 0o600))
		repository := packagejson.NewManifestRepository()

		// when
		manifest, err := repository.Read(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, manifest.Path)
		assert.Equal(t, "^1.0.0", manifest.Runtime["left-pad"])
	})

	t.Run("should read an explicit file path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"devDependencies": {"jest": "^29.0.0"}}`), 0o600))
		repository := packagejson.NewManifestRepository()

		// when
		manifest, err := repository.Read(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, manifest.Path)
		assert.Equal(t, "^29.0.0", manifest.Development["jest"])
	})

	t.Run("should fail when the manifest does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repository := packagejson.NewManifestRepository()

		// when
		manifest, err := repository.Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

		// then
		require.Error(t, err)
		assert.Nil(t, manifest)
		assert.Contains(t, err.Error(), "manifest not found")
	})

	t.Run("should fail when the directory has no package.json", func(t *testing.T) {
		t.Parallel()

		// given
		repository := packagejson.NewManifestRepository()

		// when
		_, err := repository.Read(context.Background(), t.TempDir())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}
