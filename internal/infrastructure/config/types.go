package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Replay  ReplayConfig  `yaml:"replay"`
}

// DisplayConfig describes the window and the tick rate
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`     // Window size multiplier
	Framerate    int    `yaml:"framerate"` // Ticks per second
	Title        string `yaml:"title"`
}

type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

type ReplayConfig struct {
	AppName string `yaml:"appName"` // Per-user data directory name
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "simple",
		},
		Assets: AssetsConfig{
			Dir: "gfx",
		},
		Replay: ReplayConfig{
			AppName: "simple",
		},
	}
}
