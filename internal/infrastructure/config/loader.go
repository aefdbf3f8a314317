package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml on top of Default.
// Fields missing from the file keep their default values.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}

	return cfg, nil
}

// LoadMap loads a map layout file
func (l *Loader) LoadMap(name string) (*MapConfig, error) {
	path := "maps/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var cfg MapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

var (
	errScreenSize = errors.New("screen size must be positive")
	errFramerate  = errors.New("framerate must be positive")
	errScale      = errors.New("scale must be at least 1")
)

// Validate checks the values the game cannot run without
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", d.ScreenWidth, d.ScreenHeight, errScreenSize)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%d: %w", d.Framerate, errFramerate)
	}
	if d.Scale < 1 {
		return fmt.Errorf("%d: %w", d.Scale, errScale)
	}
	return nil
}
