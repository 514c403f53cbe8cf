/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is built once per run by Wire and handed to the CLI commands.
 */
package di

import (
	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/internal/modules/lab"
	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/aristath/quantumlab/internal/modules/scene"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Rendering
	Display  render.Display
	Renderer *render.Renderer
	Theme    scene.Theme

	// Simulations
	Lab *lab.Service
}
