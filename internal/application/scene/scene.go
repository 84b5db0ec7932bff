// Package scene defines the Scene interface for game screens.
//
// The demo has a single playing screen; the interface keeps the game loop
// independent of it and lets scenes hand over to one another.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed step of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Reconfigurable is implemented by scenes that accept movement tuning
// changes while running. The game loop calls it between updates.
type Reconfigurable interface {
	Reconfigure(cfg config.MovementConfig)
}
