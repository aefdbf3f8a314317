package entity

import (
	"fmt"
	"image/color"

	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// Kind identifies an entry of the sprite description table.
type Kind int

const (
	KindLabel Kind = iota
	KindWanda
	KindAlice
	KindOrangeBrick
	KindGreenBrick
)

var kindNames = map[Kind]string{
	KindLabel:       "label",
	KindWanda:       "wanda",
	KindAlice:       "alice",
	KindOrangeBrick: "orange",
	KindGreenBrick:  "green",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sprite kind %q", name)
}

// Description is the data needed to build a sprite of one kind.
type Description struct {
	Sheet      string
	Frames     []sprite.Rect
	Scale      float64
	ColorKey   color.Color
	StartFrame int

	// Character-only fields; Ranges is nil for plain entities.
	Facing   Facing
	Ranges   map[Facing]FrameRange
	Speed    int
	Animated bool
}

// IsCharacter reports whether sprites of this kind are characters.
func (d Description) IsCharacter() bool {
	return d.Ranges != nil
}

// walkCycle is shared by every 12-frame character sheet row.
var walkCycle = map[Facing]FrameRange{
	FacingForward:  {0, 2},
	FacingRight:    {3, 5},
	FacingBackward: {6, 8},
	FacingLeft:     {9, 11},
}

const (
	walkSpeed  = 2
	brickScale = 2.65
)

var opaqueBlack = color.NRGBA{A: 0xff}

var descriptions = map[Kind]Description{
	KindLabel: {
		Sheet:    "text",
		Frames:   []sprite.Rect{{X: 0, Y: 0, W: 301, H: 248}},
		Scale:    1,
		ColorKey: opaqueBlack,
	},
	KindWanda: {
		Sheet: "charsets",
		Frames: []sprite.Rect{
			{X: 0, Y: 0, W: 12, H: 15},
			{X: 13, Y: 0, W: 10, H: 15},
			{X: 24, Y: 0, W: 10, H: 15},
			{X: 35, Y: 0, W: 10, H: 15},
			{X: 46, Y: 0, W: 10, H: 15},
			{X: 57, Y: 0, W: 10, H: 15},
			{X: 68, Y: 0, W: 12, H: 15},
			{X: 81, Y: 0, W: 10, H: 15},
			{X: 92, Y: 0, W: 10, H: 15},
			{X: 103, Y: 0, W: 10, H: 15},
			{X: 114, Y: 0, W: 10, H: 15},
			{X: 125, Y: 0, W: 10, H: 15},
		},
		Scale:      4.25,
		ColorKey:   opaqueBlack,
		StartFrame: 3,
		Facing:     FacingRight,
		Ranges:     walkCycle,
		Speed:      walkSpeed,
		Animated:   true,
	},
	KindAlice: {
		Sheet: "charsets",
		Frames: []sprite.Rect{
			{X: 0, Y: 48, W: 14, H: 17},
			{X: 15, Y: 48, W: 14, H: 17},
			{X: 29, Y: 48, W: 13, H: 17},
			{X: 43, Y: 48, W: 12, H: 17},
			{X: 56, Y: 48, W: 12, H: 17},
			{X: 69, Y: 48, W: 12, H: 17},
			{X: 82, Y: 48, W: 14, H: 17},
			{X: 97, Y: 48, W: 14, H: 17},
			{X: 112, Y: 48, W: 13, H: 17},
			{X: 126, Y: 48, W: 12, H: 17},
			{X: 139, Y: 48, W: 12, H: 17},
			{X: 152, Y: 48, W: 12, H: 17},
		},
		Scale:      3.25,
		ColorKey:   opaqueBlack,
		StartFrame: 9,
		Facing:     FacingLeft,
		Ranges:     walkCycle,
		Speed:      walkSpeed,
	},
	KindOrangeBrick: {
		Sheet:    "tileset",
		Frames:   []sprite.Rect{{X: 16, Y: 0, W: 10, H: 10}, {X: 432, Y: 0, W: 10, H: 10}},
		Scale:    brickScale,
		ColorKey: opaqueBlack,
	},
	KindGreenBrick: {
		Sheet:    "tileset",
		Frames:   []sprite.Rect{{X: 208, Y: 32, W: 10, H: 10}, {X: 48, Y: 32, W: 10, H: 10}},
		Scale:    brickScale,
		ColorKey: opaqueBlack,
	},
}

// Describe returns the description of kind.
func Describe(kind Kind) (Description, error) {
	desc, ok := descriptions[kind]
	if !ok {
		return Description{}, fmt.Errorf("no description for sprite kind %d", int(kind))
	}
	return desc, nil
}

// FrameSize returns the on-screen size of the description's start frame.
func (d Description) FrameSize() (int, int) {
	r := d.Frames[d.StartFrame]
	return sprite.ScaledSize(r.W, r.H, d.Scale)
}

// SheetSource looks up sprite sheets by name.
type SheetSource interface {
	Sheet(name string) (sprite.Sheet, error)
}

// Spawn extracts the frames of kind from sheets and places the sprite at (x, y).
func Spawn(kind Kind, sheets SheetSource, x, y int) (Sprite, error) {
	desc, err := Describe(kind)
	if err != nil {
		return nil, err
	}

	sheet, err := sheets.Sheet(desc.Sheet)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", kind, err)
	}
	frames, err := sprite.Extract(sheet, desc.Frames, desc.ColorKey, desc.Scale)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", kind, err)
	}

	if desc.IsCharacter() {
		c, err := NewCharacter(kind, frames, x, y)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	e, err := New(kind, frames, x, y, desc.StartFrame)
	if err != nil {
		return nil, err
	}
	return e, nil
}
