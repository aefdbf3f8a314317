package replay

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a store under a temporary home directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := OpenStore(fmt.Sprintf("simple_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("Cannot open replay storage: %v", err)
	}
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Available())

	data := ReplayData{
		Version: Version,
		Scene:   "menu",
		Frames:  []FrameInput{{F: 0, R: true}, {F: 1, U: true}},
	}
	assert.False(t, store.Exists("walk"))
	require.NoError(t, store.Save("walk", data))
	assert.True(t, store.Exists("walk"))

	loaded, err := store.Load("walk")
	require.NoError(t, err)
	assert.Equal(t, data.Frames, loaded.Frames)
	assert.Equal(t, "menu", loaded.Scene)
}

func TestStore_LoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load("nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_InvalidName(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"", "a/b", `a\b`, ".."} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Save(name, ReplayData{}))
			assert.False(t, store.Exists(name))
		})
	}
}

func TestStore_Degraded(t *testing.T) {
	store := NewStore(nil)

	assert.False(t, store.Available())
	assert.ErrorIs(t, store.Save("walk", ReplayData{}), ErrNoStorage)
	_, err := store.Load("walk")
	assert.ErrorIs(t, err, ErrNoStorage)
	assert.False(t, store.Exists("walk"))
}
