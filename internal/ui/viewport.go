package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/studiostardust/blackbox/internal/world"
)

const (
	// viewDepth and viewReach bound the cells drawn ahead and to each side.
	viewDepth = 6
	viewReach = 6

	// perspective is how much each cell of depth shrinks the picture.
	perspective = 0.6

	// wallFalloff dims walls with every cell of depth.
	wallFalloff = 0.8
	floorShade  = 0.1

	// Door frame, in cell units relative to its wall.
	doorHalfWidth = 0.3
	doorTop       = -0.3
	doorInset     = 0.2
)

// View is what the party sees: its cell and facing, and the camera's
// offset from that cell as (lateral, forward) while a step is animating.
type View struct {
	Level    *world.Level
	Position world.Position
	Facing   world.Direction
	Lateral  float64
	Forward  float64
}

// point is a screen position in fractional cells.
type point struct {
	x, y float64
}

// camera projects facing-relative coordinates onto the viewport.
type camera struct {
	area    Rect
	lateral float64
	forward float64
}

// project maps lateral offset dx, depth dy and height dz (0 is eye level,
// 0.5 the floor) to the screen.
func (c camera) project(dx, dy, dz float64) point {
	dx -= c.lateral
	dy -= c.forward
	scale := math.Pow(perspective, dy)
	w, h := float64(c.area.Width()), float64(c.area.Height())
	return point{
		x: dx*w*scale + w/2 + float64(c.area.X0),
		y: dz*h*scale + h/2 + float64(c.area.Y0),
	}
}

// quad is a convex four-cornered face listed in drawing order.
type quad [4]point

// RenderViewport draws the first-person view, far cells first so nearer
// walls paint over them.
func (r *Renderer) RenderViewport(v View) {
	r.DrawBox(ViewportRect, "")
	cam := camera{area: ViewportRect.Inner(), lateral: v.Lateral, forward: v.Forward}

	for y := viewDepth; y >= 0; y-- {
		for _, x := range lateralOrder() {
			r.renderCell(cam, v, x, y)
		}
	}
}

// lateralOrder lists lateral offsets from the outside in.
func lateralOrder() []int {
	order := make([]int, 0, 2*viewReach+1)
	for i := viewReach; i > 0; i-- {
		order = append(order, -i, i)
	}
	return append(order, 0)
}

func (r *Renderer) renderCell(cam camera, v View, x, y int) {
	cell := v.Level.Translate(v.Position, v.Facing, x, y)
	fx, fy := float64(x), float64(y)
	shade := math.Pow(wallFalloff, fy)

	floor := quad{
		cam.project(fx-0.5, fy, 0.5),
		cam.project(fx+0.5, fy, 0.5),
		cam.project(fx+0.5, fy+1, 0.5),
		cam.project(fx-0.5, fy+1, 0.5),
	}
	r.strokeQuad(cam.area, floor, r.styles.Shade(shade*floorShade))

	// Front wall, then the two side walls, which are nearer.
	if wall := v.Level.WallTowards(cell, v.Facing); wall != world.WallNone {
		face := quad{
			cam.project(fx-0.5, fy+1, -0.5),
			cam.project(fx+0.5, fy+1, -0.5),
			cam.project(fx+0.5, fy+1, 0.5),
			cam.project(fx-0.5, fy+1, 0.5),
		}
		var door quad
		if wall == world.WallDoor {
			door = quad{
				cam.project(fx-doorHalfWidth, fy+1, doorTop),
				cam.project(fx+doorHalfWidth, fy+1, doorTop),
				cam.project(fx+doorHalfWidth, fy+1, 0.5),
				cam.project(fx-doorHalfWidth, fy+1, 0.5),
			}
		}
		r.drawWall(cam.area, face, door, wall == world.WallDoor, shade)
	}

	sides := []struct {
		dir world.Direction
		at  float64
	}{
		{v.Facing.Left(), fx - 0.5},
		{v.Facing.Right(), fx + 0.5},
	}
	for _, side := range sides {
		wall := v.Level.WallTowards(cell, side.dir)
		if wall == world.WallNone {
			continue
		}
		face := quad{
			cam.project(side.at, fy, -0.5),
			cam.project(side.at, fy+1, -0.5),
			cam.project(side.at, fy+1, 0.5),
			cam.project(side.at, fy, 0.5),
		}
		var door quad
		if wall == world.WallDoor {
			door = quad{
				cam.project(side.at, fy+doorInset, doorTop),
				cam.project(side.at, fy+1-doorInset, doorTop),
				cam.project(side.at, fy+1-doorInset, 0.5),
				cam.project(side.at, fy+doorInset, 0.5),
			}
		}
		r.drawWall(cam.area, face, door, wall == world.WallDoor, shade)
	}
}

func (r *Renderer) drawWall(area Rect, face, door quad, hasDoor bool, shade float64) {
	style := r.styles.Shade(shade)
	r.fillQuad(area, face)
	r.strokeQuad(area, face, style)
	if hasDoor {
		r.fillQuad(area, door)
		r.strokeQuad(area, door, style)
	}
}

// fillQuad blanks every cell whose center lies inside q, hiding whatever
// was drawn behind it.
func (r *Renderer) fillQuad(area Rect, q quad) {
	minX, maxX := q[0].x, q[0].x
	minY, maxY := q[0].y, q[0].y
	for _, p := range q[1:] {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	x0 := max(int(math.Floor(minX)), area.X0)
	x1 := min(int(math.Ceil(maxX)), area.X1)
	y0 := max(int(math.Floor(minY)), area.Y0)
	y1 := min(int(math.Ceil(maxY)), area.Y1)

	blank := r.styles.Regular
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if q.contains(point{float64(x) + 0.5, float64(y) + 0.5}) {
				r.screen.SetContent(x, y, ' ', blank)
			}
		}
	}
}

// contains reports whether p lies inside the convex quad. Degenerate
// (edge-on) quads contain nothing.
func (q quad) contains(p point) bool {
	var sign float64
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return sign != 0
}

func (r *Renderer) strokeQuad(area Rect, q quad, style tcell.Style) {
	for i := range q {
		r.drawLine(area, q[i], q[(i+1)%len(q)], style)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm, picking a
// glyph from the segment's slope. Cells outside area are skipped.
func (r *Renderer) drawLine(area Rect, from, to point, style tcell.Style) {
	x0, y0 := int(math.Floor(from.x)), int(math.Floor(from.y))
	x1, y1 := int(math.Floor(to.x)), int(math.Floor(to.y))
	glyph := lineGlyph(x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if area.Contains(x0, y0) {
			r.screen.SetContent(x0, y0, glyph, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// lineGlyph picks the ASCII stroke closest to a segment's direction. The
// screen's y axis points down.
func lineGlyph(dx, dy int) rune {
	switch {
	case dy == 0 || abs(dx) > 2*abs(dy):
		return '-'
	case dx == 0 || abs(dy) > 2*abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
