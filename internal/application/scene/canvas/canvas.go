// Package canvas composites sprites over a background and shows the
// viewport of the result on screen.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/drawmoon/simple/internal/domain/entity"
)

// Canvas owns a background, a viewport and the sprites painted over them.
// Sprites are painted in insertion order, so later ones cover earlier ones.
type Canvas struct {
	background *image.NRGBA
	viewport   image.Rectangle
	sprites    []entity.Sprite

	// GPU surfaces, created on the first Draw.
	backgroundImage *ebiten.Image
	surface         *ebiten.Image

	// CPU surface, created on the first Render.
	pixels *image.NRGBA
}

// New creates a w x h canvas filled with fill. The viewport is a
// screenW x screenH rectangle aligned to the canvas' bottom edge.
func New(w, h int, fill color.Color, screenW, screenH int) *Canvas {
	bg := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(bg, bg.Rect, image.NewUniform(fill), image.Point{}, draw.Src)

	viewport := image.Rect(0, h-screenH, screenW, h).Intersect(bg.Rect)

	return &Canvas{
		background: bg,
		viewport:   viewport,
	}
}

// Add appends s to the draw order.
func (c *Canvas) Add(s entity.Sprite) {
	c.sprites = append(c.sprites, s)
}

// Sprites returns the sprites in draw order.
func (c *Canvas) Sprites() []entity.Sprite {
	out := make([]entity.Sprite, len(c.sprites))
	copy(out, c.sprites)
	return out
}

// Viewport returns the part of the canvas shown on screen.
func (c *Canvas) Viewport() image.Rectangle {
	return c.viewport
}

// Bounds returns the full canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.background.Rect
}

// Update passes the same input snapshot to every sprite.
func (c *Canvas) Update(in entity.Controls) {
	for _, s := range c.sprites {
		s.Update(in)
	}
}

// Draw repaints the viewport from the background, paints every sprite and
// copies the viewport to the top-left corner of screen.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if c.surface == nil {
		c.backgroundImage = ebiten.NewImageFromImage(c.background)
		c.surface = ebiten.NewImage(c.background.Rect.Dx(), c.background.Rect.Dy())
	}

	// Erase what the previous tick left behind.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.viewport.Min.X), float64(c.viewport.Min.Y))
	op.Blend = ebiten.BlendCopy
	c.surface.DrawImage(c.backgroundImage.SubImage(c.viewport).(*ebiten.Image), op)

	for _, s := range c.sprites {
		s.Draw(c.surface)
	}

	screen.DrawImage(c.surface.SubImage(c.viewport).(*ebiten.Image), nil)
}

// Render is the CPU version of Draw. dst receives the viewport at its
// top-left corner.
func (c *Canvas) Render(dst draw.Image) {
	if c.pixels == nil {
		c.pixels = image.NewNRGBA(c.background.Rect)
	}

	draw.Draw(c.pixels, c.viewport, c.background, c.viewport.Min, draw.Src)

	for _, s := range c.sprites {
		s.Paint(c.pixels)
	}

	r := image.Rectangle{Max: c.viewport.Size()}.Add(dst.Bounds().Min)
	draw.Draw(dst, r, c.pixels, c.viewport.Min, draw.Src)
}
