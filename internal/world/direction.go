package world

// Direction is one of the four compass facings.
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

// Directions lists every facing in clockwise order starting from East.
var Directions = []Direction{East, South, West, North}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "unknown"
	}
}

// Offset returns the unit vector for one step in this direction.
// Positive y points south.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	default:
		return 0, 0
	}
}

// Left returns the facing after a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	switch d {
	case East:
		return North
	case South:
		return East
	case West:
		return South
	default:
		return West
	}
}

// Right returns the facing after a quarter turn clockwise.
func (d Direction) Right() Direction {
	switch d {
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return East
	}
}

// Reverse returns the opposite facing.
func (d Direction) Reverse() Direction {
	switch d {
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return South
	}
}
