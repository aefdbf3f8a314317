// Package configs embeds the default configuration files.
package configs

import "embed"

// FS holds game.yaml and maps/*.yaml.
//
//go:embed game.yaml maps
var FS embed.FS
