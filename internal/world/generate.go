package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/studiostardust/blackbox/internal/telemetry"
)

const (
	// Default generated level dimensions
	DefaultWidth  = 40
	DefaultHeight = 40

	// BSP parameters
	minRoomSize = 3
	maxRoomSize = 7
	minLeafSize = 8
)

// Generator carves rooms and corridors into a scratch tile grid and then
// converts the grid into a Level of edge walls.
type Generator struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room
	rng    *rand.Rand
}

// NewGenerator creates a generator over a grid of solid rock.
func NewGenerator(width, height int, rng *rand.Rand) *Generator {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileRock
		}
	}

	return &Generator{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}
}

// Generate lays out the level with a BSP split and returns it together with
// the starting cell (the center of the first room).
func (g *Generator) Generate(ctx context.Context) (*Level, Position) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{
		x:      1,
		y:      1,
		width:  g.Width - 2,
		height: g.Height - 2,
	}
	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)

	level := g.Level()
	start := level.Center()
	if len(g.Rooms) > 0 {
		start = g.Rooms[0].Center()
	}

	span.SetAttributes(
		attribute.Int("level.width", g.Width),
		attribute.Int("level.height", g.Height),
		attribute.Int("level.room_count", len(g.Rooms)),
		attribute.Int("level.start_x", start.X),
		attribute.Int("level.start_y", start.Y),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return level, start
}

// TileAt returns the tile at the given cell, or rock outside the grid.
func (g *Generator) TileAt(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return TileRock
	}
	return g.Tiles[y][x]
}

// Level converts the carved grid into edge walls. An edge between open and
// closed cells is solid, an edge where a corridor meets a room is a door,
// and every other edge is left open.
func (g *Generator) Level() *Level {
	level := NewLevel(g.Width, g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y <= g.Height; y++ {
			level.SetHorizontal(x, y, edgeBetween(g.TileAt(x, y-1), g.TileAt(x, y)))
		}
	}
	for x := 0; x <= g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			level.SetVertical(x, y, edgeBetween(g.TileAt(x-1, y), g.TileAt(x, y)))
		}
	}
	return level
}

func edgeBetween(a, b Tile) Wall {
	switch {
	case a.IsOpen() != b.IsOpen():
		return WallSolid
	case a.IsOpen() && a != b:
		return WallDoor
	default:
		return WallNone
	}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(node *bspNode) {
	var splitHorizontally bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		splitHorizontally = false
	case node.height >= minLeafSize*2:
		splitHorizontally = true
	case node.width >= minLeafSize*2:
		splitHorizontally = false
	default:
		return
	}

	extent := node.width
	if splitHorizontally {
		extent = node.height
	}
	lo, hi := minLeafSize, extent-minLeafSize
	if hi < lo {
		return
	}
	splitPos := lo + g.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates a room in every leaf of the BSP tree.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	maxWidth := min(maxRoomSize, node.width-2)
	maxHeight := min(maxRoomSize, node.height-2)
	if maxWidth < minRoomSize || maxHeight < minRoomSize {
		return
	}
	roomWidth := minRoomSize + g.rng.Intn(maxWidth-minRoomSize+1)
	roomHeight := minRoomSize + g.rng.Intn(maxHeight-minRoomSize+1)

	room := Room{
		X:      node.x + 1 + g.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + g.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	g.Rooms = append(g.Rooms, room)
	g.carveRoom(room)
}

// carveRoom sets all tiles within the room to room floor.
func (g *Generator) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1 {
				g.Tiles[y][x] = TileRoom
			}
		}
	}
}

// connectRooms joins a room from each pair of sibling subtrees.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(node.left)
	g.connectRooms(node.right)

	leftRoom := g.anyRoom(node.left)
	rightRoom := g.anyRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(*leftRoom, *rightRoom)
	}
}

// anyRoom returns some room from a subtree.
func (g *Generator) anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := g.anyRoom(node.left); room != nil {
		return room
	}
	return g.anyRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (g *Generator) carveCorridor(a, b Room) {
	from, to := a.Center(), b.Center()

	if g.rng.Intn(2) == 0 {
		g.carveLine(from.X, to.X, from.Y, true)
		g.carveLine(from.Y, to.Y, to.X, false)
	} else {
		g.carveLine(from.Y, to.Y, from.X, false)
		g.carveLine(from.X, to.X, to.Y, true)
	}
}

// carveLine turns rock between two coordinates into corridor. Room floor is
// left untouched so corridor entrances become doors.
func (g *Generator) carveLine(from, to, fixed int, horizontal bool) {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		x, y := i, fixed
		if !horizontal {
			x, y = fixed, i
		}
		if x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1 && g.Tiles[y][x] == TileRock {
			g.Tiles[y][x] = TileCorridor
		}
	}
}
