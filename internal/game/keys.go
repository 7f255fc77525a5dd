package game

import "github.com/gdamore/tcell/v2"

// Key is a logical key press. What it does depends on the active scene.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyStepForward
	KeyStepBackward
	KeyStrafeLeft
	KeyStrafeRight
	KeyParty
	KeyItems
	KeyConfirm
	KeyCancel
	KeyQuit
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyStepForward:
		return "step_forward"
	case KeyStepBackward:
		return "step_backward"
	case KeyStrafeLeft:
		return "strafe_left"
	case KeyStrafeRight:
		return "strafe_right"
	case KeyParty:
		return "party"
	case KeyItems:
		return "items"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyFromEvent maps a tcell key event to a logical key.
func KeyFromEvent(ev *tcell.EventKey) Key {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyConfirm
	case tcell.KeyEscape:
		return KeyCancel
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
	default:
		return KeyNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return KeyStepForward
	case 's', 'S':
		return KeyStepBackward
	case 'a', 'A':
		return KeyStrafeLeft
	case 'd', 'D':
		return KeyStrafeRight
	case 'p', 'P':
		return KeyParty
	case 'i', 'I':
		return KeyItems
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyNone
}
