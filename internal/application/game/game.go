// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/charmove/internal/application/scene"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
// Every Update is one fixed physics step of dt seconds.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	updates <-chan config.MovementConfig
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 50.0, // Default to 50 steps per second
	}
	g.current.OnEnter()
	return g
}

// SetConfigUpdates sets a channel of reloaded movement configs. Pending
// configs are applied to the current scene before each step.
func (g *Game) SetConfigUpdates(updates <-chan config.MovementConfig) {
	g.updates = updates
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.applyConfigUpdates()

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

func (g *Game) applyConfigUpdates() {
	for g.updates != nil {
		select {
		case cfg, ok := <-g.updates:
			if !ok {
				g.updates = nil
				return
			}
			if r, ok := g.current.(scene.Reconfigurable); ok {
				r.Reconfigure(cfg)
			}
		default:
			return
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed step used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
