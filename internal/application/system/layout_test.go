package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawmoon/simple/internal/domain/entity"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

func TestLoadLayout(t *testing.T) {
	t.Run("loads default map", func(t *testing.T) {
		placements, err := LoadLayout(config.DefaultMap())
		require.NoError(t, err)

		assert.Equal(t, []entity.Placement{
			{Kind: entity.KindOrangeBrick, X: 220, Y: 100},
			{Kind: entity.KindGreenBrick, X: 246, Y: 100},
		}, placements)
	})

	t.Run("keeps overlapping tiles in order", func(t *testing.T) {
		cfg := &config.MapConfig{
			Name: "overlap",
			Tiles: []config.TileSpawnConfig{
				{X: 0, Y: 0, Kind: "green"},
				{X: 0, Y: 0, Kind: "orange"},
			},
		}

		placements, err := LoadLayout(cfg)
		require.NoError(t, err)
		require.Len(t, placements, 2)
		assert.Equal(t, entity.KindOrangeBrick, placements[1].Kind)
	})

	t.Run("empty map", func(t *testing.T) {
		placements, err := LoadLayout(&config.MapConfig{Name: "empty"})
		require.NoError(t, err)
		assert.Empty(t, placements)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		cfg := &config.MapConfig{Name: "bad", Tiles: []config.TileSpawnConfig{{Kind: "lava"}}}

		_, err := LoadLayout(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects characters", func(t *testing.T) {
		cfg := &config.MapConfig{Name: "bad", Tiles: []config.TileSpawnConfig{{Kind: "wanda"}}}

		_, err := LoadLayout(cfg)
		assert.Error(t, err)
	})
}
