// Package menu provides the title screen: a label and two characters, the
// left one walking with the arrow keys.
package menu

import (
	"fmt"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/scene"
	"github.com/drawmoon/simple/internal/application/scene/canvas"
	"github.com/drawmoon/simple/internal/domain/entity"
)

var colorBG = color.NRGBA{A: 0xff}

// Menu is the title scene
type Menu struct {
	env    *game.Env
	canvas *canvas.Canvas
	player *entity.Character
}

// New builds the menu and its sprites from env's assets.
func New(env *game.Env) (*Menu, error) {
	w, h := env.ScreenSize()

	placements, err := Layout(w, h)
	if err != nil {
		return nil, err
	}

	m := &Menu{
		env:    env,
		canvas: canvas.New(w, h, colorBG, w, h),
	}
	for _, p := range placements {
		s, err := entity.Spawn(p.Kind, env.Assets, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("menu: %w", err)
		}
		if c, ok := s.(*entity.Character); ok && c.Animated() && m.player == nil {
			m.player = c
		}
		m.canvas.Add(s)
	}

	return m, nil
}

// Layout returns the menu placements for a w x h screen: the label centred
// 75 pixels above the middle, Wanda bottom-left and Alice bottom-right.
func Layout(w, h int) ([]entity.Placement, error) {
	label, err := entity.Describe(entity.KindLabel)
	if err != nil {
		return nil, err
	}
	alice, err := entity.Describe(entity.KindAlice)
	if err != nil {
		return nil, err
	}

	lw, lh := label.FrameSize()
	aw, _ := alice.FrameSize()

	return []entity.Placement{
		{
			Kind: entity.KindLabel,
			X:    int(math.Floor(float64(w)/2 - float64(lw)/2)),
			Y:    int(math.Floor(float64(h)/2-float64(lh)/2)) - 75,
		},
		{Kind: entity.KindWanda, X: 25, Y: h - 80},
		{Kind: entity.KindAlice, X: w - aw - 25, Y: h - 75},
	}, nil
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	m.canvas.Update(m.env.Input.GetInput())
	return nil, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	m.canvas.Draw(screen)
}

// Render implements scene.Renderer
func (m *Menu) Render(dst draw.Image) {
	m.canvas.Render(dst)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {
	log.Printf("[Menu] Enter (%d sprites)", len(m.canvas.Sprites()))
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {
	if m.player != nil {
		log.Printf("[Menu] Exit (player moved %d,%d)", m.player.MoveX, m.player.MoveY)
		return
	}
	log.Printf("[Menu] Exit")
}

// Sprites returns the menu sprites in draw order.
func (m *Menu) Sprites() []entity.Sprite {
	return m.canvas.Sprites()
}

// Player returns the controllable character, nil if there is none.
func (m *Menu) Player() *entity.Character {
	return m.player
}
