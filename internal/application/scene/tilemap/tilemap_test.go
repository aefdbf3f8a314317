package tilemap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/domain/entity"
	"github.com/drawmoon/simple/internal/infrastructure/asset"
	"github.com/drawmoon/simple/internal/infrastructure/config"
	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// tileSheet is a 512x64 opaque sheet, orange on the top half and green
// on the bottom half.
func tileSheet() sprite.Sheet {
	img := image.NewNRGBA(image.Rect(0, 0, 512, 64))
	orange := color.NRGBA{0xff, 0x80, 0x00, 0xff}
	green := color.NRGBA{0x00, 0xc0, 0x00, 0xff}
	for y := 0; y < 64; y++ {
		for x := 0; x < 512; x++ {
			if y < 32 {
				img.SetNRGBA(x, y, orange)
			} else {
				img.SetNRGBA(x, y, green)
			}
		}
	}
	return sprite.Sheet{Image: img}
}

func newTestEnv(withSheet bool) *game.Env {
	lib := asset.NewLibrary()
	if withSheet {
		lib.Add("tileset", tileSheet())
	}
	return &game.Env{
		Config: config.Default(),
		Assets: lib,
		Input:  system.HeldInput{Controls: entity.Controls{Up: true, Right: true}},
	}
}

func TestNew_DefaultMap(t *testing.T) {
	tm, err := New(newTestEnv(true), config.DefaultMap())
	require.NoError(t, err)

	tiles := tm.Tiles()
	require.Len(t, tiles, 2)
	assert.Equal(t, entity.KindOrangeBrick, tiles[0].Kind())
	assert.Equal(t, image.Pt(220, 100), tiles[0].Position())
	assert.Equal(t, entity.KindGreenBrick, tiles[1].Kind())
	assert.Equal(t, image.Pt(246, 100), tiles[1].Position())
	assert.Equal(t, config.DefaultMap().Name, tm.Name())
}

func TestNew_UnknownKind(t *testing.T) {
	cfg := &config.MapConfig{
		Name:  "bad",
		Tiles: []config.TileSpawnConfig{{X: 0, Y: 0, Kind: "lava"}},
	}
	_, err := New(newTestEnv(true), cfg)
	assert.Error(t, err)
}

func TestNew_MissingSheet(t *testing.T) {
	_, err := New(newTestEnv(false), config.DefaultMap())
	assert.ErrorIs(t, err, asset.ErrNotFound)
}

func TestUpdate_TilesStayPut(t *testing.T) {
	tm, err := New(newTestEnv(true), config.DefaultMap())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := tm.Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	tiles := tm.Tiles()
	assert.Equal(t, image.Pt(220, 100), tiles[0].Position())
	assert.Equal(t, image.Pt(246, 100), tiles[1].Position())
}

func TestRender_OverlapLastInsertedWins(t *testing.T) {
	cfg := &config.MapConfig{
		Name: "overlap",
		Tiles: []config.TileSpawnConfig{
			{X: 100, Y: 100, Kind: "orange"},
			{X: 110, Y: 100, Kind: "green"},
		},
	}
	tm, err := New(newTestEnv(true), cfg)
	require.NoError(t, err)

	dst := image.NewNRGBA(image.Rect(0, 0, 800, 600))
	tm.Render(dst)

	// bricks are 26x26 on screen
	assert.Equal(t, color.NRGBA{0xff, 0x80, 0x00, 0xff}, dst.NRGBAAt(105, 105))
	assert.Equal(t, color.NRGBA{0x00, 0xc0, 0x00, 0xff}, dst.NRGBAAt(115, 105))
	assert.Equal(t, color.NRGBA{0x00, 0xc0, 0x00, 0xff}, dst.NRGBAAt(135, 125))
	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(136, 105))
}
