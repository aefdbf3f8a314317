package entity

// Facing is the direction a character looks towards.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
	FacingForward
	FacingBackward
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	case FacingForward:
		return "Forward"
	case FacingBackward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// State is the behavioural state of a character.
// Only StateStand has update rules; the others are reserved.
type State int

const (
	StateStand State = iota
	StateWalk
	StateWalkAuto
	StateJump
	StateFall
	StateFly
	StateFire
	StateSleep
	StateDizzy
	StateDead
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateStand:
		return "Stand"
	case StateWalk:
		return "Walk"
	case StateWalkAuto:
		return "WalkAuto"
	case StateJump:
		return "Jump"
	case StateFall:
		return "Fall"
	case StateFly:
		return "Fly"
	case StateFire:
		return "Fire"
	case StateSleep:
		return "Sleep"
	case StateDizzy:
		return "Dizzy"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Controls is the snapshot of held keys for one tick.
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// Placement puts a sprite of the given kind at pixel coordinates.
type Placement struct {
	Kind Kind
	X, Y int
}
