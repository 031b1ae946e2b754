package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/skewcheck/internal"
	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	checkController := appContext.GetCheckController()
	bind := checkController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "skewcheck [path]",
		Short: "Report how far npm dependencies lag behind the registry",
		Long: `Checks the dependencies declared in a package.json against the latest
versions published on the npm registry and reports the outdated ones,
classified as major, minor, or patch updates.

Usage modes:
  skewcheck .                          Check ./package.json
  skewcheck path/to/package.json       Check a specific manifest
  skewcheck classify ^1.2.3 2.0.0      Classify the gap between two versions`,
		Args:          bind.Args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return checkController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	checkController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

// configureLogger sets the log format and, with DEBUG=true, the debug level.
func configureLogger(controllers []entities.Controller) {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
	logger.Debugf("Registered %d subcommands", len(controllers))
}

func main() {
	// Registry tokens may live in a local .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Failed to load .env file: %v", err)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	configureLogger(appContext.GetControllers())

	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'skewcheck': %s", err)
	}
}
