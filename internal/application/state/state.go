package state

import (
	"fmt"
	"strings"
)

// SceneID identifies the scene the game starts in
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneMap
)

// String returns the string representation of the scene id
func (s SceneID) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneMap:
		return "map"
	default:
		return "unknown"
	}
}

// ParseSceneID parses a scene name as accepted by -scene
func ParseSceneID(s string) (SceneID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "menu":
		return SceneMenu, nil
	case "map":
		return SceneMap, nil
	default:
		return 0, fmt.Errorf("unknown scene %q", s)
	}
}
