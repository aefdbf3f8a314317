package bootstrap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/scene"
	"github.com/drawmoon/simple/internal/application/scene/menu"
	"github.com/drawmoon/simple/internal/application/scene/tilemap"
	"github.com/drawmoon/simple/internal/application/state"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/infrastructure/asset"
	"github.com/drawmoon/simple/internal/infrastructure/config"
	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

func newTestEnv() *game.Env {
	lib := asset.NewLibrary()
	for _, name := range []string{"charsets", "text", "tileset"} {
		img := image.NewNRGBA(image.Rect(0, 0, 512, 256))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		lib.Add(name, sprite.Sheet{Image: img})
	}
	return &game.Env{Config: config.Default(), Assets: lib, Input: system.HeldInput{}}
}

func TestNewScene(t *testing.T) {
	env := newTestEnv()

	s, err := NewScene(env, state.SceneMenu, nil)
	require.NoError(t, err)
	assert.IsType(t, &menu.Menu{}, s)

	s, err = NewScene(env, state.SceneMap, nil)
	require.NoError(t, err)
	require.IsType(t, &tilemap.TileMap{}, s)
	assert.Len(t, s.(*tilemap.TileMap).Tiles(), 2)

	_, err = NewScene(env, state.SceneID(42), nil)
	assert.Error(t, err)
}

func TestNewScene_MapConfig(t *testing.T) {
	cfg := &config.MapConfig{
		Name:  "single",
		Tiles: []config.TileSpawnConfig{{X: 5, Y: 6, Kind: "green"}},
	}

	s, err := NewScene(newTestEnv(), state.SceneMap, cfg)
	require.NoError(t, err)

	tiles := s.(*tilemap.TileMap).Tiles()
	require.Len(t, tiles, 1)
	assert.Equal(t, image.Pt(5, 6), tiles[0].Position())
}

func TestNewScene_Renderer(t *testing.T) {
	env := newTestEnv()
	for _, id := range []state.SceneID{state.SceneMenu, state.SceneMap} {
		t.Run(id.String(), func(t *testing.T) {
			s, err := NewScene(env, id, nil)
			require.NoError(t, err)
			_, ok := s.(scene.Renderer)
			assert.True(t, ok)
		})
	}
}

func TestNewScene_MissingAssets(t *testing.T) {
	env := newTestEnv()
	env.Assets = asset.NewLibrary()

	_, err := NewScene(env, state.SceneMenu, nil)
	assert.ErrorIs(t, err, asset.ErrNotFound)
}
