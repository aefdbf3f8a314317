package entity

import (
	"fmt"

	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// FrameRange is an inclusive range of frame indices.
type FrameRange struct {
	Start, End int
}

// Contains reports whether index lies in [Start, End].
func (r FrameRange) Contains(index int) bool {
	return index >= r.Start && index <= r.End
}

// Character is an entity with a facing, a behavioural state and a walk cycle
// per facing.
type Character struct {
	*Entity

	Facing Facing
	State  State

	ranges   map[Facing]FrameRange
	speed    int
	animated bool
}

// NewCharacter builds a character from its kind description.
// The description's start frame must lie in its initial facing's range.
func NewCharacter(kind Kind, frames []*sprite.Frame, x, y int) (*Character, error) {
	desc, err := Describe(kind)
	if err != nil {
		return nil, err
	}
	if !desc.IsCharacter() {
		return nil, fmt.Errorf("%s is not a character", kind)
	}

	for facing, r := range desc.Ranges {
		if r.Start > r.End || r.Start < 0 || r.End >= len(frames) {
			return nil, fmt.Errorf("new %s: %s range [%d, %d] of %d frames: %w",
				kind, facing, r.Start, r.End, len(frames), ErrIndexOutOfRange)
		}
	}
	if !desc.Ranges[desc.Facing].Contains(desc.StartFrame) {
		return nil, fmt.Errorf("new %s: start frame %d outside %s range: %w",
			kind, desc.StartFrame, desc.Facing, ErrIndexOutOfRange)
	}

	e, err := New(kind, frames, x, y, desc.StartFrame)
	if err != nil {
		return nil, err
	}

	return &Character{
		Entity:   e,
		Facing:   desc.Facing,
		State:    StateStand,
		ranges:   desc.Ranges,
		speed:    desc.Speed,
		animated: desc.Animated,
	}, nil
}

// FrameRange returns the walk cycle of the current facing.
func (c *Character) FrameRange() FrameRange {
	return c.ranges[c.Facing]
}

// Animated reports whether the character reacts to input.
func (c *Character) Animated() bool {
	return c.animated
}

// Update advances the character by one tick.
func (c *Character) Update(in Controls) {
	if !c.animated {
		return
	}

	switch c.State {
	case StateStand:
		c.stand(in)
	}
}

// stand walks the character while a direction is held. Fire freezes it.
func (c *Character) stand(in Controls) {
	if in.Fire {
		return
	}

	facing, dx, dy, ok := c.steer(in)
	if !ok {
		return
	}

	turned := facing != c.Facing
	c.Facing = facing
	c.Move(dx, dy)

	// The cycle runs Start..End and wraps; a turn restarts it.
	r := c.FrameRange()
	if turned || c.frame < r.Start || c.frame >= r.End {
		c.frame = r.Start
	} else {
		c.frame++
	}
}

// steer picks the first held direction in the order up, down, left, right.
func (c *Character) steer(in Controls) (facing Facing, dx, dy int, ok bool) {
	switch {
	case in.Up:
		return FacingBackward, 0, -c.speed, true
	case in.Down:
		return FacingForward, 0, c.speed, true
	case in.Left:
		return FacingLeft, -c.speed, 0, true
	case in.Right:
		return FacingRight, c.speed, 0, true
	}
	return c.Facing, 0, 0, false
}
