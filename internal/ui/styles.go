package ui

import "github.com/gdamore/tcell/v2"

// Styles are the two text faces every screen is drawn with, plus the
// colors derived from them.
type Styles struct {
	Regular tcell.Style
	Bold    tcell.Style
}

// DefaultStyles returns white-on-black regular and bold faces.
func DefaultStyles() Styles {
	regular := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return Styles{
		Regular: regular,
		Bold:    regular.Bold(true),
	}
}

// Dimmed returns the regular face in gray, for unavailable entries.
func (s Styles) Dimmed() tcell.Style {
	return s.Regular.Foreground(tcell.ColorGray)
}

// Border returns the face used for panel frames.
func (s Styles) Border() tcell.Style {
	return s.Regular.Foreground(tcell.ColorDarkGray)
}

// Colored returns the regular face in c.
func (s Styles) Colored(c tcell.Color) tcell.Style {
	return s.Regular.Foreground(c)
}

// Shade returns a gray line style at the given intensity in [0, 1].
func (s Styles) Shade(intensity float64) tcell.Style {
	v := int32(255 * intensity)
	v = max(v, 24)
	v = min(v, 255)
	return s.Regular.Foreground(tcell.NewRGBColor(v, v, v))
}
