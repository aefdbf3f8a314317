// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, tile map) implements the Scene interface to handle its
// own update logic and rendering.
package scene

import (
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (menu, tile map, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (1/framerate).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene or when the game quits.
	OnExit()
}

// Renderer is implemented by scenes that can also composite on the CPU,
// without a window. The headless snapshot tool relies on it.
type Renderer interface {
	Render(dst draw.Image)
}
