//go:build unit

package npmcli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/repositories/npmcli"
)

type fakeRunner struct {
	stdout string
	stderr string
	err    error

	name string
	args []string
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) (string, string, error) {
	f.name = name
	f.args = args
	return f.stdout, f.stderr, f.err
}

func TestRegistryRepositoryLatestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse the version printed by npm view", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &fakeRunner{stdout: "4.17.21\n"}
		registry := npmcli.NewRegistryRepositoryWithRunner("/usr/bin/npm", entities.RegistryConfig{}, runner.run)

		// when
		version, err := registry.LatestVersion(context.Background(), "lodash")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.SemanticVersion{Major: 4, Minor: 17, Patch: 21}, version)
		assert.Equal(t, "/usr/bin/npm", runner.name)
		assert.Equal(t, []string{"view", "lodash", "version"}, runner.args)
	})

	t.Run("should pass the registry URL and scoped token", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &fakeRunner{stdout: "1.0.0"}
		registry := npmcli.NewRegistryRepositoryWithRunner("npm", entities.RegistryConfig{
			URL:   "https://npm.example.com/repo/",
			Token: "s3cr3t",
		}, runner.run)

		// when
		_, err := registry.LatestVersion(context.Background(), "@acme/ui")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"view", "@acme/ui", "version",
			"--registry", "https://npm.example.com/repo/",
			"--//npm.example.com/repo/:_authToken=s3cr3t",
		}, runner.args)
	})

	t.Run("should wrap ErrPackageNotFound when npm reports E404", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &fakeRunner{
			stderr: "npm ERR! code E404\nnpm ERR! 404 Not Found - GET https://registry.npmjs.org/nope",
			err:    errors.New("exit status 1"),
		}
		registry := npmcli.NewRegistryRepositoryWithRunner("npm", entities.RegistryConfig{}, runner.run)

		// when
		_, err := registry.LatestVersion(context.Background(), "nope")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPackageNotFound)
	})

	t.Run("should wrap ErrRegistryUnavailable on any other failure", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &fakeRunner{
			stderr: "npm ERR! code ECONNREFUSED",
			err:    errors.New("exit status 1"),
		}
		registry := npmcli.NewRegistryRepositoryWithRunner("npm", entities.RegistryConfig{}, runner.run)

		// when
		_, err := registry.LatestVersion(context.Background(), "react")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrRegistryUnavailable)
	})

	t.Run("should wrap ErrPackageNotFound when npm prints nothing", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &fakeRunner{stdout: "  \n"}
		registry := npmcli.NewRegistryRepositoryWithRunner("npm", entities.RegistryConfig{}, runner.run)

		// when
		_, err := registry.LatestVersion(context.Background(), "unpublished")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPackageNotFound)
	})

	t.Run("should report the npm-cli name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := npmcli.NewRegistryRepositoryWithRunner("npm", entities.RegistryConfig{}, (&fakeRunner{}).run)

		// when
		name := registry.Name()

		// then
		assert.Equal(t, npmcli.Name, name)
	})
}
