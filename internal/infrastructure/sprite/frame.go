// Package sprite cuts individually drawable frames out of sprite sheets.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

var (
	// ErrOutOfBounds is returned when a frame rectangle does not fit in its sheet.
	ErrOutOfBounds = errors.New("sprite: rectangle out of sheet bounds")
	// ErrInvalidScale is returned for a zero, negative or NaN scale factor.
	ErrInvalidScale = errors.New("sprite: scale must be positive")
)

// Rect is a frame rectangle in sheet pixels, relative to the sheet's top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Bounds returns r as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Sheet is a decoded sprite sheet.
//
// HasAlpha reports whether the source file carried per-pixel alpha. Sheets
// without it get the extractor's color key applied to every frame.
type Sheet struct {
	Image    image.Image
	HasAlpha bool
}

// Frame is a single sub-image of a sheet. Frames are never modified after
// extraction.
type Frame struct {
	pix *image.NRGBA
	gpu *ebiten.Image
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.pix.Rect.Dx() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.pix.Rect.Dy() }

// Pixels returns the CPU copy of the frame.
func (f *Frame) Pixels() image.Image { return f.pix }

// Image returns the GPU image of the frame, uploading it on first use.
func (f *Frame) Image() *ebiten.Image {
	if f.gpu == nil {
		f.gpu = ebiten.NewImageFromImage(f.pix)
	}
	return f.gpu
}

// Extract copies every rectangle out of sheet into its own frame.
//
// Pixels equal to key become transparent unless the sheet has its own alpha
// channel. Each frame is then scaled by scale with nearest-neighbour sampling;
// the scaled size is floor(w*scale) x floor(h*scale).
func Extract(sheet Sheet, rects []Rect, key color.Color, scale float64) ([]*Frame, error) {
	if sheet.Image == nil {
		return nil, fmt.Errorf("extract from nil sheet: %w", ErrOutOfBounds)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("scale %v: %w", scale, ErrInvalidScale)
	}

	bounds := sheet.Image.Bounds()
	frames := make([]*Frame, 0, len(rects))
	for i, r := range rects {
		src := r.Bounds().Add(bounds.Min)
		if r.W <= 0 || r.H <= 0 || !src.In(bounds) {
			return nil, fmt.Errorf("frame %d %+v in %dx%d sheet: %w", i, r, bounds.Dx(), bounds.Dy(), ErrOutOfBounds)
		}

		pix := image.NewNRGBA(image.Rect(0, 0, r.W, r.H))
		draw.Draw(pix, pix.Rect, sheet.Image, src.Min, draw.Src)
		if !sheet.HasAlpha && key != nil {
			ApplyColorKey(pix, key)
		}

		frames = append(frames, &Frame{pix: scaleImage(pix, scale)})
	}
	return frames, nil
}

// ApplyColorKey makes every opaque pixel of img that matches key fully transparent.
func ApplyColorKey(img *image.NRGBA, key color.Color) {
	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			p := img.Pix[i : i+4 : i+4]
			if p[3] == 0xff && p[0] == k.R && p[1] == k.G && p[2] == k.B {
				p[0], p[1], p[2], p[3] = 0, 0, 0, 0
			}
		}
	}
}

// ScaledSize returns the size of a w x h frame scaled by scale.
// Sizes are floored and never drop below one pixel.
func ScaledSize(w, h int, scale float64) (int, int) {
	return scaledDim(w, scale), scaledDim(h, scale)
}

func scaledDim(n int, scale float64) int {
	// The epsilon keeps products such as 10*2.3 from flooring one pixel short.
	d := int(math.Floor(float64(n)*scale + 1e-9))
	if d < 1 {
		d = 1
	}
	return d
}

func scaleImage(src *image.NRGBA, scale float64) *image.NRGBA {
	if scale == 1 {
		return src
	}
	w, h := ScaledSize(src.Rect.Dx(), src.Rect.Dy(), scale)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return dst
}
