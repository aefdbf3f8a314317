package bootstrap

import (
	"fmt"
	"log"
	"os"

	"github.com/drawmoon/simple/configs"
	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/infrastructure/asset"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

// ConfigLoader returns a loader for dir, or for the embedded configs when
// dir is empty.
func ConfigLoader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(configs.FS, "configs")
	}
	return config.NewLoader(dir)
}

// NewEnv loads game.yaml and the sprite sheets. assetDir overrides
// assets.dir from the config when set.
func NewEnv(loader *config.Loader, assetDir string, input system.InputSource) (*game.Env, error) {
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded %s (%dx%d @ %d TPS)", loader.BasePath(),
		cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)

	if assetDir == "" {
		assetDir = cfg.Assets.Dir
	}
	lib, err := asset.Load(os.DirFS(assetDir), ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load assets from %s: %w", assetDir, err)
	}

	return &game.Env{
		Config: cfg,
		Assets: lib,
		Input:  input,
	}, nil
}

// LoadMap loads maps/<name>.yaml. The empty name selects the built-in layout.
func LoadMap(loader *config.Loader, name string) (*config.MapConfig, error) {
	if name == "" {
		return config.DefaultMap(), nil
	}
	return loader.LoadMap(name)
}
