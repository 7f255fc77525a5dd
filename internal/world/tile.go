// Package world provides the level grid, facings, and level generation.
package world

// Tile is a cell in the scratch grid a level is carved from.
type Tile rune

const (
	// TileRock is solid, uncarved rock.
	TileRock Tile = '#'
	// TileRoom is floor belonging to a room.
	TileRoom Tile = '.'
	// TileCorridor is floor belonging to a corridor.
	TileCorridor Tile = ','
)

// IsOpen returns true if the tile can be stood on.
func (t Tile) IsOpen() bool {
	return t == TileRoom || t == TileCorridor
}

// Wall is the boundary between two neighbouring cells.
type Wall int

const (
	WallNone Wall = iota
	WallSolid
	WallDoor
)

// String returns a human-readable wall name.
func (w Wall) String() string {
	switch w {
	case WallNone:
		return "none"
	case WallSolid:
		return "solid"
	case WallDoor:
		return "door"
	default:
		return "unknown"
	}
}

// IsPassable returns true if the party can step through the boundary.
func (w Wall) IsPassable() bool {
	return w == WallNone || w == WallDoor
}
