package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/skewcheck/internal/domain/commands"
	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/presenters"
)

// CheckController handles the "check" subcommand and the root command with a path argument.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [path]",
		Short: "Report outdated dependencies of a package.json",
		Long: `Read the runtime and development dependencies of a package.json,
look up the latest published version of every floating ("^") dependency,
and report the ones that are behind with their bump type (major, minor, patch).

Pinned dependencies are never looked up. Dependencies that cannot be parsed
or resolved are listed as skipped and do not stop the check.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output format: table, json, or markdown")
	cmd.Flags().String("registry", "", "Registry implementation: npm (HTTP API) or npm-cli (npm view)")
	cmd.Flags().String("registry-url", "", "Registry base URL (default: public npm registry)")
	cmd.Flags().Int("concurrency", 0, "Maximum concurrent registry lookups")
	cmd.Flags().Duration("timeout", 0, "Timeout for a single registry lookup")
	cmd.Flags().String("tilde", "", `How "~" ranges are treated: pinned or floating`)
	cmd.Flags().Bool("skip-dev", false, "Do not check devDependencies")
	cmd.Flags().StringSlice("only", nil, "Only report these bump types (major, minor, patch)")
}

// Execute runs the check and renders the report to stdout.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if overrideErr := applyFlagOverrides(cmd, settings); overrideErr != nil {
		return overrideErr
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	report, err := it.command.Execute(ctx, settings, commands.CheckOptions{
		Path:    path,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	return presenters.Render(cmd.OutOrStdout(), report, settings.Output)
}

// loadSettings reads the config file given by --config, the first one found
// in the default locations, or falls back to the defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults: %v", findErr)
			return entities.NewDefaultSettings(), nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// applyFlagOverrides copies every flag the user set onto settings.
func applyFlagOverrides(cmd *cobra.Command, settings *entities.Settings) error {
	flags := cmd.Flags()

	if flags.Changed("output") {
		settings.Output, _ = flags.GetString("output")
	}
	if flags.Changed("registry") {
		settings.Registry.Type, _ = flags.GetString("registry")
	}
	if flags.Changed("registry-url") {
		settings.Registry.URL, _ = flags.GetString("registry-url")
	}
	if flags.Changed("concurrency") {
		settings.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("timeout") {
		settings.Registry.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("tilde") {
		tilde, _ := flags.GetString("tilde")
		settings.Tilde = entities.RangePolicy(strings.ToLower(tilde))
	}
	if flags.Changed("skip-dev") {
		settings.SkipDev, _ = flags.GetBool("skip-dev")
	}
	if flags.Changed("only") {
		settings.Only, _ = flags.GetStringSlice("only")
	}

	return settings.Validate()
}
