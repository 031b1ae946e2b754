package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/skewcheck/internal/domain/entities"
)

// ClassifyController handles the "classify" subcommand, which compares two
// versions without touching a manifest or a registry.
type ClassifyController struct{}

// NewClassifyController creates a new ClassifyController.
func NewClassifyController() *ClassifyController {
	return &ClassifyController{}
}

// GetBind returns the Cobra command metadata for the classify controller.
func (it *ClassifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "classify <installed> <latest>",
		Short: "Print the bump type between two versions",
		Long: `Compare an installed version (or declared range such as "^1.2.3")
against a latest version and print "major", "minor", "patch", or "none".`,
		Args: cobra.ExactArgs(2), //nolint:mnd // installed + latest
	}
}

// AddFlags is a no-op: classify has no flags of its own.
func (it *ClassifyController) AddFlags(_ *cobra.Command) {}

// Execute parses both arguments and prints their classification.
func (it *ClassifyController) Execute(cmd *cobra.Command, args []string) error {
	installed, _, err := entities.ParseVersionRange(args[0], entities.TildePinned)
	if err != nil {
		return err
	}
	latest, err := entities.ParseVersion(args[1])
	if err != nil {
		return err
	}

	bump := entities.Classify(installed, latest)
	if bump == entities.BumpNone {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), bump)
	return err
}
