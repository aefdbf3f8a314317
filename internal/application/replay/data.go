package replay

import "github.com/drawmoon/simple/internal/domain/entity"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F    int  `json:"f"`              // Frame number
	U    bool `json:"u,omitempty"`    // Up
	D    bool `json:"d,omitempty"`    // Down
	L    bool `json:"l,omitempty"`    // Left
	R    bool `json:"r,omitempty"`    // Right
	Fire bool `json:"fire,omitempty"` // Fire
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Controls converts the recorded frame back to an input snapshot.
func (fi FrameInput) Controls() entity.Controls {
	return entity.Controls{
		Up:    fi.U,
		Down:  fi.D,
		Left:  fi.L,
		Right: fi.R,
		Fire:  fi.Fire,
	}
}

func newFrameInput(frame int, c entity.Controls) FrameInput {
	return FrameInput{
		F:    frame,
		U:    c.Up,
		D:    c.Down,
		L:    c.Left,
		R:    c.Right,
		Fire: c.Fire,
	}
}
