package config

// MapConfig is the root config for maps/<name>.yaml
type MapConfig struct {
	Name  string            `yaml:"name"`
	Tiles []TileSpawnConfig `yaml:"tiles"`
}

// TileSpawnConfig places one tile. Kind is a sprite kind name ("orange", "green").
type TileSpawnConfig struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

// DefaultMap returns the built-in two-brick layout
func DefaultMap() *MapConfig {
	return &MapConfig{
		Name: "demo",
		Tiles: []TileSpawnConfig{
			{X: 220, Y: 100, Kind: "orange"},
			{X: 246, Y: 100, Kind: "green"},
		},
	}
}
