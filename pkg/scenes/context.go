// Package scenes implements the application's views: the home screen with
// the URL field, the simulated scan screen, and the result screen. Every
// scene draws the shared ambient particle background first, so navigating
// between views never interrupts or reseeds the simulation.
package scenes

import (
	"math/rand"

	"github.com/phishy-app/phishy-desktop/pkg/game"
	"github.com/phishy-app/phishy-desktop/pkg/scanner"
	"github.com/phishy-app/phishy-desktop/pkg/sim"
)

// Context carries the shared application state into each scene. Scenes are
// recreated on navigation; the context (and with it the background
// simulation, settings and last report) lives for the whole run.
type Context struct {
	Manager   *game.SceneManager
	Scheduler *sim.Scheduler
	Surface   *sim.Surface
	Settings  *game.SettingsManager
	Audio     *game.AudioManager
	Rand      *rand.Rand

	// PendingURL is the URL handed from the home scene to the scan scene.
	PendingURL string
	// LastReport is the most recent scan result, shown by the result scene.
	LastReport *scanner.Report
}

// NewSceneFactory returns the factory the scene manager uses to build a
// scene for each view.
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(view game.ViewID) game.Scene {
		switch view {
		case game.ViewHome:
			return NewHomeScene(ctx)
		case game.ViewScan:
			return NewScanScene(ctx)
		case game.ViewResult:
			return NewResultScene(ctx)
		default:
			return nil
		}
	}
}
