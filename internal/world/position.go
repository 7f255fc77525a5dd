package world

// Position is a cell coordinate in a level.
type Position struct {
	X, Y int
}

// Bounds is the extent of a level grid. Positions produced by Bounds are
// always inside it; movement wraps around each axis.
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// MoveBy moves p by distance steps in direction d, wrapping each axis.
func (b Bounds) MoveBy(p Position, d Direction, distance int) Position {
	dx, dy := d.Offset()
	return Position{
		X: wrap(p.X+dx*distance, b.Width),
		Y: wrap(p.Y+dy*distance, b.Height),
	}
}

// Translate moves p by (lateral, forward) in the frame where facing points
// forwards and facing.Right() points to positive lateral.
func (b Bounds) Translate(p Position, facing Direction, lateral, forward int) Position {
	return b.MoveBy(b.MoveBy(p, facing, forward), facing.Right(), lateral)
}

// wrap returns v modulo n, always in [0, n).
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
