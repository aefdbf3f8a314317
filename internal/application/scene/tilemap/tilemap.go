// Package tilemap provides the scene that shows static tiles from a map layout.
package tilemap

import (
	"fmt"
	"image/color"
	"image/draw"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/scene"
	"github.com/drawmoon/simple/internal/application/scene/canvas"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/domain/entity"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

var colorBG = color.NRGBA{A: 0xff}

// TileMap is the tile map scene
type TileMap struct {
	env    *game.Env
	name   string
	canvas *canvas.Canvas
}

// New builds the scene for mapCfg. Overlapping tiles are allowed.
func New(env *game.Env, mapCfg *config.MapConfig) (*TileMap, error) {
	placements, err := system.LoadLayout(mapCfg)
	if err != nil {
		return nil, err
	}

	w, h := env.ScreenSize()
	tm := &TileMap{
		env:    env,
		name:   mapCfg.Name,
		canvas: canvas.New(w, h, colorBG, w, h),
	}
	for _, p := range placements {
		s, err := entity.Spawn(p.Kind, env.Assets, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", mapCfg.Name, err)
		}
		tm.canvas.Add(s)
	}

	return tm, nil
}

// Update implements scene.Scene
func (tm *TileMap) Update(_ float64) (scene.Scene, error) {
	tm.canvas.Update(tm.env.Input.GetInput())
	return nil, nil
}

// Draw implements scene.Scene
func (tm *TileMap) Draw(screen *ebiten.Image) {
	tm.canvas.Draw(screen)
}

// Render implements scene.Renderer
func (tm *TileMap) Render(dst draw.Image) {
	tm.canvas.Render(dst)
}

// OnEnter implements scene.Scene
func (tm *TileMap) OnEnter() {
	log.Printf("[Map] Enter %s (%d tiles)", tm.name, len(tm.canvas.Sprites()))
}

// OnExit implements scene.Scene
func (tm *TileMap) OnExit() {
	log.Printf("[Map] Exit %s", tm.name)
}

// Name returns the map name.
func (tm *TileMap) Name() string {
	return tm.name
}

// Tiles returns the tiles in draw order.
func (tm *TileMap) Tiles() []entity.Sprite {
	return tm.canvas.Sprites()
}
