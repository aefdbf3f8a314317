// Package bootstrap builds the starting scene of a run.
package bootstrap

import (
	"fmt"

	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/scene"
	"github.com/drawmoon/simple/internal/application/scene/menu"
	"github.com/drawmoon/simple/internal/application/scene/tilemap"
	"github.com/drawmoon/simple/internal/application/state"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

// NewScene creates the scene identified by id. mapCfg is only used by the
// map scene; nil selects the built-in layout.
func NewScene(env *game.Env, id state.SceneID, mapCfg *config.MapConfig) (scene.Scene, error) {
	switch id {
	case state.SceneMenu:
		m, err := menu.New(env)
		if err != nil {
			return nil, fmt.Errorf("failed to create menu: %w", err)
		}
		return m, nil
	case state.SceneMap:
		if mapCfg == nil {
			mapCfg = config.DefaultMap()
		}
		tm, err := tilemap.New(env, mapCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create map: %w", err)
		}
		return tm, nil
	default:
		return nil, fmt.Errorf("unknown scene %s", id)
	}
}
