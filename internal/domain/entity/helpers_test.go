package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// testFrames returns n 2x2 frames, frame i filled with gray level i+1.
func testFrames(t *testing.T, n int) []*sprite.Frame {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2*n, 2))
	rects := make([]sprite.Rect, n)
	for i := 0; i < n; i++ {
		c := color.NRGBA{uint8(i + 1), uint8(i + 1), uint8(i + 1), 255}
		for y := 0; y < 2; y++ {
			img.SetNRGBA(2*i, y, c)
			img.SetNRGBA(2*i+1, y, c)
		}
		rects[i] = sprite.Rect{X: 2 * i, Y: 0, W: 2, H: 2}
	}
	frames, err := sprite.Extract(sprite.Sheet{Image: img}, rects, nil, 1)
	require.NoError(t, err)
	return frames
}

// blankSheets serves one large opaque sheet under every name.
type blankSheets struct {
	missing string
}

func (b blankSheets) Sheet(name string) (sprite.Sheet, error) {
	if name == b.missing {
		return sprite.Sheet{}, errMissingSheet
	}
	img := image.NewNRGBA(image.Rect(0, 0, 512, 256))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return sprite.Sheet{Image: img}, nil
}

var errMissingSheet = errorString("missing sheet")

type errorString string

func (e errorString) Error() string { return string(e) }

func newTestWanda(t *testing.T) *Character {
	t.Helper()
	c, err := NewCharacter(KindWanda, testFrames(t, 12), 100, 100)
	require.NoError(t, err)
	return c
}
