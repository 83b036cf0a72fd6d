package camera

// Action is a movement the camera responds to.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionUp
	ActionDown

	actionCount
)

var actionNames = [actionCount]string{"forward", "back", "left", "right", "up", "down"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Input is the per-frame view of the input source.
// The camera keeps nothing from it except the pointer position.
type Input interface {
	// Held reports whether the action is active this frame.
	Held(a Action) bool
	// Pointer returns the absolute pointer position.
	Pointer() (x, y float64)
}

// Snapshot is a plain value Input.
type Snapshot struct {
	Actions [actionCount]bool
	X, Y    float64
}

// Held implements Input.
func (s Snapshot) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.Actions[a]
}

// Pointer implements Input.
func (s Snapshot) Pointer() (x, y float64) {
	return s.X, s.Y
}

// With returns a copy of s with the given actions held.
func (s Snapshot) With(actions ...Action) Snapshot {
	for _, a := range actions {
		if a >= 0 && a < actionCount {
			s.Actions[a] = true
		}
	}
	return s
}
