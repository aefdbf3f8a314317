package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/drawmoon/simple/internal/domain/entity"
)

// Replayer plays recorded input back. It is an InputSource; once the
// recording is exhausted it reports no keys held.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads replay data from JSON
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (entity.Controls, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.Controls{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Controls(), true
}

// GetInput implements system.InputSource
func (r *Replayer) GetInput() entity.Controls {
	c, _ := r.Next()
	return c
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the scene the recording was made in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
