//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/controllers"
	"github.com/rios0rios0/skewcheck/test/domain/commanddoubles"
)

// newCheckCommand builds a cobra command wired like the root command, with a
// config file so that the test never picks up one from the environment.
func newCheckCommand(t *testing.T, ctrl *controllers.CheckController, config string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "skewcheck.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(config), 0o600))

	cmd := &cobra.Command{Use: "check"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	ctrl.AddFlags(cmd)
	require.NoError(t, cmd.Flags().Set("config", cfgPath))

	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestCheckControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the path and file settings to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		ctrl := controllers.NewCheckController(stub)
		cmd, _ := newCheckCommand(t, ctrl, "concurrency: 2\nskip_dev: true\n")

		// when
		err := ctrl.Execute(cmd, []string{"./web"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "./web", stub.LastOpts.Path)
		assert.Equal(t, 2, stub.LastSettings.Concurrency)
		assert.True(t, stub.LastSettings.SkipDev)
	})

	t.Run("should let flags override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		ctrl := controllers.NewCheckController(stub)
		cmd, _ := newCheckCommand(t, ctrl, "concurrency: 2\nregistry:\n  type: npm\n")
		require.NoError(t, cmd.Flags().Set("concurrency", "8"))
		require.NoError(t, cmd.Flags().Set("registry", "npm-cli"))
		require.NoError(t, cmd.Flags().Set("timeout", "3s"))
		require.NoError(t, cmd.Flags().Set("tilde", "FLOATING"))
		require.NoError(t, cmd.Flags().Set("only", "major,minor"))
		require.NoError(t, cmd.Flags().Set("verbose", "true"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		settings := stub.LastSettings
		assert.Equal(t, 8, settings.Concurrency)
		assert.Equal(t, "npm-cli", settings.Registry.Type)
		assert.Equal(t, 3*time.Second, settings.Registry.Timeout)
		assert.Equal(t, entities.TildeFloating, settings.Tilde)
		assert.Equal(t, []string{"major", "minor"}, settings.Only)
		assert.True(t, stub.LastOpts.Verbose)
		assert.Empty(t, stub.LastOpts.Path)
	})

	t.Run("should render the report in the requested format", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{Report: &entities.Report{
			Findings: []entities.StalenessFinding{{
				Name:      "left-pad",
				Group:     entities.GroupRuntime,
				Installed: entities.SemanticVersion{Major: 1},
				Latest:    entities.SemanticVersion{Major: 1, Minor: 3, Patch: 2},
				BumpType:  entities.BumpMinor,
			}},
			Checked: 1,
		}}
		ctrl := controllers.NewCheckController(stub)
		cmd, out := newCheckCommand(t, ctrl, "output: markdown\n")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "| left-pad | runtime | 1.0.0 | 1.3.2 | 🟡 Minor |")
	})

	t.Run("should reject an invalid flag value before running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		ctrl := controllers.NewCheckController(stub)
		cmd, _ := newCheckCommand(t, ctrl, "")
		require.NoError(t, cmd.Flags().Set("concurrency", "0"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "concurrency must be at least 1")
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should fail when the config file is invalid", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		ctrl := controllers.NewCheckController(stub)
		cmd, _ := newCheckCommand(t, ctrl, "{{{{invalid yaml")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should wrap a failing check", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{ExecuteErr: entities.ErrMalformedManifest}
		ctrl := controllers.NewCheckController(stub)
		cmd, out := newCheckCommand(t, ctrl, "")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrMalformedManifest)
		assert.Empty(t, out.String())
	})
}

func TestCheckControllerGetBind(t *testing.T) {
	t.Parallel()

	t.Run("should accept at most one path", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := controllers.NewCheckController(&commanddoubles.StubCheckCommand{})

		// when
		bind := ctrl.GetBind()

		// then
		assert.Equal(t, "check [path]", bind.Use)
		require.NoError(t, bind.Args(&cobra.Command{}, []string{"."}))
		require.Error(t, bind.Args(&cobra.Command{}, []string{"a", "b"}))
	})
}
