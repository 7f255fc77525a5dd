package world

const (
	// ExampleWidth and ExampleHeight size the hand-built example level.
	ExampleWidth  = 20
	ExampleHeight = 20
)

// Level is a grid of cells whose boundaries may hold walls or doors.
//
// Horizontal edges run along the top of each cell: horizontal[x][y] is the
// north edge of cell (x, y) and the south edge of (x, y-1), so each column
// holds Height+1 edges. Vertical edges run along the left of each cell:
// vertical[x][y] is the west edge of (x, y) and the east edge of (x-1, y),
// giving Width+1 columns.
type Level struct {
	Bounds
	horizontal [][]Wall
	vertical   [][]Wall
}

// NewLevel creates an open level with no walls at all.
func NewLevel(width, height int) *Level {
	horizontal := make([][]Wall, width)
	for x := range horizontal {
		horizontal[x] = make([]Wall, height+1)
	}
	vertical := make([][]Wall, width+1)
	for x := range vertical {
		vertical[x] = make([]Wall, height)
	}
	return &Level{
		Bounds:     Bounds{Width: width, Height: height},
		horizontal: horizontal,
		vertical:   vertical,
	}
}

// ExampleLevel returns a 20x20 room enclosed by solid walls with a single
// door on the west edge of cell (4, 4).
func ExampleLevel() *Level {
	l := NewLevel(ExampleWidth, ExampleHeight)
	l.Enclose()
	l.SetVertical(4, 4, WallDoor)
	return l
}

// Enclose puts a solid wall around the outer border.
func (l *Level) Enclose() {
	for x := 0; x < l.Width; x++ {
		l.horizontal[x][0] = WallSolid
		l.horizontal[x][l.Height] = WallSolid
	}
	for y := 0; y < l.Height; y++ {
		l.vertical[0][y] = WallSolid
		l.vertical[l.Width][y] = WallSolid
	}
}

// SetHorizontal sets the north edge of cell (x, y). y may equal Height to
// address the southern border.
func (l *Level) SetHorizontal(x, y int, w Wall) {
	l.horizontal[x][y] = w
}

// SetVertical sets the west edge of cell (x, y). x may equal Width to
// address the eastern border.
func (l *Level) SetVertical(x, y int, w Wall) {
	l.vertical[x][y] = w
}

// WallTowards returns the boundary on side d of the cell at p.
func (l *Level) WallTowards(p Position, d Direction) Wall {
	if !l.Contains(p) {
		return WallSolid
	}
	switch d {
	case East:
		return l.vertical[p.X+1][p.Y]
	case South:
		return l.horizontal[p.X][p.Y+1]
	case West:
		return l.vertical[p.X][p.Y]
	case North:
		return l.horizontal[p.X][p.Y]
	default:
		return WallSolid
	}
}

// IsPassable returns true if the party can step from p towards d.
func (l *Level) IsPassable(p Position, d Direction) bool {
	return l.WallTowards(p, d).IsPassable()
}

// Center returns the middle cell of the level.
func (l *Level) Center() Position {
	return Position{X: l.Width / 2, Y: l.Height / 2}
}
