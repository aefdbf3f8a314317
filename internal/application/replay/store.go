package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const replayObject = "replays"

var (
	// ErrNoStorage is returned by a store without a data directory.
	ErrNoStorage = errors.New("replay storage unavailable")
	// ErrNotFound is returned when no recording has the requested name.
	ErrNotFound = errors.New("replay not found")
)

// Store keeps recordings by name in the per-user data directory.
// A store with a nil manager is degraded: every operation fails with ErrNoStorage.
type Store struct {
	manager *gdata.Manager
}

// NewStore wraps an opened gdata manager. manager may be nil.
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// OpenStore opens the data directory of appName
func OpenStore(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open replay storage: %w", err)
	}
	return NewStore(manager), nil
}

// Available reports whether the store can persist data
func (s *Store) Available() bool {
	return s.manager != nil
}

// Save stores data under name, replacing an older recording
func (s *Store) Save(name string, data ReplayData) error {
	if err := s.check(name); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := s.manager.SaveObjectProp(replayObject, name, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save replay %s: %w", name, err)
	}

	log.Printf("[Replay] Saved %s (%d frames)", name, len(data.Frames))
	return nil
}

// Load reads the recording stored under name
func (s *Store) Load(name string) (*ReplayData, error) {
	if err := s.check(name); err != nil {
		return nil, err
	}
	if !s.manager.ObjectPropExists(replayObject, name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	raw, err := s.manager.LoadObjectProp(replayObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay %s: %w", name, err)
	}
	return Decode(bytes.NewReader(raw))
}

// Exists reports whether a recording is stored under name
func (s *Store) Exists(name string) bool {
	if s.check(name) != nil {
		return false
	}
	return s.manager.ObjectPropExists(replayObject, name)
}

func (s *Store) check(name string) error {
	if s.manager == nil {
		return ErrNoStorage
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid replay name %q", name)
	}
	return nil
}
