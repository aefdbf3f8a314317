package system

import (
	"fmt"

	"github.com/drawmoon/simple/internal/domain/entity"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

// LoadLayout converts a MapConfig into tile placements, keeping file order.
// Tiles may overlap; the later one is drawn on top.
func LoadLayout(cfg *config.MapConfig) ([]entity.Placement, error) {
	placements := make([]entity.Placement, 0, len(cfg.Tiles))
	for i, tile := range cfg.Tiles {
		kind, err := entity.ParseKind(tile.Kind)
		if err != nil {
			return nil, fmt.Errorf("map %s tile %d: %w", cfg.Name, i, err)
		}

		desc, err := entity.Describe(kind)
		if err != nil {
			return nil, err
		}
		if desc.IsCharacter() {
			return nil, fmt.Errorf("map %s tile %d: %s is not a tile", cfg.Name, i, kind)
		}

		placements = append(placements, entity.Placement{Kind: kind, X: tile.X, Y: tile.Y})
	}
	return placements, nil
}
