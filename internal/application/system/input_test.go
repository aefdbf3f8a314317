package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawmoon/simple/internal/domain/entity"
)

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	var _ InputSource = sys
}

func TestHeldInput(t *testing.T) {
	held := HeldInput{Controls: entity.Controls{Left: true}}

	for i := 0; i < 3; i++ {
		assert.Equal(t, entity.Controls{Left: true}, held.GetInput())
	}
}

func TestParseControls(t *testing.T) {
	tests := []struct {
		in   string
		want entity.Controls
	}{
		{"", entity.Controls{}},
		{"up", entity.Controls{Up: true}},
		{"down, left", entity.Controls{Down: true, Left: true}},
		{"RIGHT,space", entity.Controls{Right: true, Fire: true}},
		{"fire,up,down,left,right", entity.Controls{Up: true, Down: true, Left: true, Right: true, Fire: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseControls(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseControls("up,jump")
	assert.Error(t, err)
}
