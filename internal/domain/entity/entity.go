package entity

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// ErrIndexOutOfRange is returned when a frame index does not address a frame.
var ErrIndexOutOfRange = errors.New("entity: frame index out of range")

// Sprite is anything a scene updates and draws once per tick.
type Sprite interface {
	Kind() Kind
	Position() image.Point
	Update(in Controls)
	// Draw paints the current frame onto a GPU surface.
	Draw(dst *ebiten.Image)
	// Paint paints the current frame onto a CPU surface.
	Paint(dst draw.Image)
}

// Entity is a positioned, drawable object with an ordered list of frames.
type Entity struct {
	X, Y int

	// MoveX and MoveY accumulate every delta passed to Move.
	MoveX, MoveY int

	kind   Kind
	frames []*sprite.Frame
	frame  int
}

// New creates an entity showing frames[frame] at (x, y).
func New(kind Kind, frames []*sprite.Frame, x, y, frame int) (*Entity, error) {
	e := &Entity{X: x, Y: y, kind: kind, frames: frames}
	if err := e.SetFrame(frame); err != nil {
		return nil, fmt.Errorf("new %s: %w", kind, err)
	}
	return e, nil
}

// Kind returns the kind the entity was created as.
func (e *Entity) Kind() Kind {
	return e.kind
}

// Position returns the top-left corner in pixels.
func (e *Entity) Position() image.Point {
	return image.Pt(e.X, e.Y)
}

// Move translates the entity and records the delta.
func (e *Entity) Move(dx, dy int) {
	e.MoveX += dx
	e.MoveY += dy
	e.X += dx
	e.Y += dy
}

// SetFrame selects the frame to draw.
func (e *Entity) SetFrame(index int) error {
	if index < 0 || index >= len(e.frames) {
		return fmt.Errorf("frame %d of %d: %w", index, len(e.frames), ErrIndexOutOfRange)
	}
	e.frame = index
	return nil
}

// Frame returns the current frame index.
func (e *Entity) Frame() int {
	return e.frame
}

// FrameCount returns the number of frames.
func (e *Entity) FrameCount() int {
	return len(e.frames)
}

// Current returns the current frame.
func (e *Entity) Current() *sprite.Frame {
	return e.frames[e.frame]
}

// Bounds returns the area covered by the current frame.
func (e *Entity) Bounds() image.Rectangle {
	f := e.Current()
	return image.Rect(e.X, e.Y, e.X+f.Width(), e.Y+f.Height())
}

// Update does nothing; decorative entities never change on their own.
func (e *Entity) Update(Controls) {}

// Draw implements Sprite.
func (e *Entity) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(e.X), float64(e.Y))
	dst.DrawImage(e.Current().Image(), op)
}

// Paint implements Sprite.
func (e *Entity) Paint(dst draw.Image) {
	draw.Draw(dst, e.Bounds(), e.Current().Pixels(), image.Point{}, draw.Over)
}
