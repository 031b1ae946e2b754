package internal

import (
	"github.com/rios0rios0/skewcheck/internal/domain/entities"
	"github.com/rios0rios0/skewcheck/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI entry point needs from the container.
type AppInternal struct {
	controllers     []entities.Controller
	checkController *controllers.CheckController
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(
	controllers *[]entities.Controller,
	checkController *controllers.CheckController,
) *AppInternal {
	return &AppInternal{
		controllers:     *controllers,
		checkController: checkController,
	}
}

// GetControllers returns every controller to be mounted as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetCheckController returns the controller backing the root command.
func (it *AppInternal) GetCheckController() *controllers.CheckController {
	return it.checkController
}
