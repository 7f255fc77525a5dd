package game

import (
	"time"

	"github.com/studiostardust/blackbox/internal/world"
)

// StepDuration is how long one step animation lasts.
const StepDuration = 200 * time.Millisecond

// StepKind is the direction of a step relative to the party's facing.
type StepKind int

const (
	StepForward StepKind = iota
	StepBackward
	StepLeft
	StepRight
)

// String returns a human-readable step name.
func (k StepKind) String() string {
	switch k {
	case StepForward:
		return "forward"
	case StepBackward:
		return "backward"
	case StepLeft:
		return "left"
	case StepRight:
		return "right"
	default:
		return "unknown"
	}
}

// Direction returns the world direction of the step for a given facing.
func (k StepKind) Direction(facing world.Direction) world.Direction {
	switch k {
	case StepBackward:
		return facing.Reverse()
	case StepLeft:
		return facing.Left()
	case StepRight:
		return facing.Right()
	default:
		return facing
	}
}

// deferred reports whether the position update waits until the animation
// finishes. Only forward steps defer; the others commit on key-down.
func (k StepKind) deferred() bool {
	return k == StepForward
}

// Animation is an in-flight step. It exists only between the key that
// started it and the tick (or next key) that finishes it.
type Animation struct {
	Kind      StepKind
	Remaining time.Duration
}

// ViewOffset returns how far the camera sits from the party's logical
// cell while the step plays, as (lateral, forward) in cells. The camera is
// drawn half way between the old and new cells.
func (a *Animation) ViewOffset() (lateral, forward float64) {
	if a == nil {
		return 0, 0
	}
	switch a.Kind {
	case StepForward, StepBackward:
		return 0, 0.5
	case StepLeft:
		return 0.5, 0
	case StepRight:
		return -0.5, 0
	default:
		return 0, 0
	}
}
