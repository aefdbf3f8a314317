package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/domain/entity"
)

// ErrEmpty is returned when saving a recording without frames.
var ErrEmpty = errors.New("no frames to save")

// Recorder wraps an input source and records every snapshot it hands out
type Recorder struct {
	source    system.InputSource
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder reading from source
func NewRecorder(source system.InputSource, scene string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			Scene:     scene,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// GetInput implements system.InputSource
func (r *Recorder) GetInput() entity.Controls {
	c := r.source.GetInput()
	if r.recording {
		r.data.Frames = append(r.data.Frames, newFrameInput(len(r.data.Frames), c))
	}
	return c
}

// Stop stops recording. Input keeps flowing through.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// GenerateName creates a recording name based on current time
func GenerateName() string {
	return fmt.Sprintf("replay_%s", time.Now().Format("20060102_150405"))
}
