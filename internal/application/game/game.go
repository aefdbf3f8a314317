// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/drawmoon/simple/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	quit    bool
	exited  bool
	closing func() bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		closing: ebiten.IsWindowBeingClosed,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Once the window asks to close, the current scene is exited and
// ebiten.Termination ends the run.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.closing() {
		g.quit = true
	}
	if g.quit {
		if !g.exited {
			g.exited = true
			g.current.OnExit()
			log.Printf("[Game] Quit")
		}
		return ebiten.Termination
	}

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

// Step runs n updates without a window, stopping at the first error.
func (g *Game) Step(n int) error {
	for i := 0; i < n; i++ {
		if err := g.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Quit makes the next Update terminate the game.
func (g *Game) Quit() {
	g.quit = true
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetCloseSignal replaces the window-close check.
// Headless runs and tests use it instead of ebiten.IsWindowBeingClosed.
func (g *Game) SetCloseSignal(closing func() bool) {
	g.closing = closing
}
