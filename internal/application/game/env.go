package game

import (
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/infrastructure/asset"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

// Env is everything a scene needs from the outside world. It is built once
// at startup and handed to scene constructors.
type Env struct {
	Config *config.GameConfig
	Assets *asset.Library
	Input  system.InputSource
}

// ScreenSize returns the configured logical screen size.
func (e *Env) ScreenSize() (int, int) {
	return e.Config.Display.ScreenWidth, e.Config.Display.ScreenHeight
}

// TickDuration returns the delta time of one tick in seconds.
func (e *Env) TickDuration() float64 {
	return 1.0 / float64(e.Config.Display.Framerate)
}
