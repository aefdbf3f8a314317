package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/drawmoon/simple/internal/domain/entity"
)

// InputSource supplies the snapshot of held keys for one tick.
// Scenes call GetInput exactly once per Update.
type InputSource interface {
	GetInput() entity.Controls
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() entity.Controls {
	return entity.Controls{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// HeldInput reports the same keys on every tick
type HeldInput struct {
	Controls entity.Controls
}

// GetInput implements InputSource
func (h HeldInput) GetInput() entity.Controls {
	return h.Controls
}

// ParseControls parses a comma separated key list such as "up,fire".
// The empty string means no key is held.
func ParseControls(s string) (entity.Controls, error) {
	var c entity.Controls
	for _, key := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "":
		case "up":
			c.Up = true
		case "down":
			c.Down = true
		case "left":
			c.Left = true
		case "right":
			c.Right = true
		case "fire", "space":
			c.Fire = true
		default:
			return entity.Controls{}, fmt.Errorf("unknown key %q", key)
		}
	}
	return c, nil
}
