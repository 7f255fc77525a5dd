package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/studiostardust/blackbox/internal/entity"
	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/world"
)

// Rect is a panel frame given by its inclusive corner cells.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Inner returns the area inside the frame.
func (r Rect) Inner() Rect {
	return Rect{X0: r.X0 + 1, Y0: r.Y0 + 1, X1: r.X1 - 1, Y1: r.Y1 - 1}
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.X1 - r.X0 + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.Y1 - r.Y0 + 1 }

// Contains returns true if the cell is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Panel layout for an 80x23 terminal.
var (
	ViewportRect  = Rect{0, 0, 49, 15}
	StatusRect    = Rect{50, 0, 78, 15}
	PartyRect     = Rect{0, 16, 49, 22}
	ControlsRect  = Rect{50, 16, 78, 22}
	SheetRect     = Rect{0, 0, 49, 15}
	InventoryRect = Rect{0, 0, 78, 15}
	DetailsRect   = Rect{0, 16, 49, 22}
)

// EmptySlot is drawn in place of a missing item name.
const EmptySlot = "````"

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles Styles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, styles: DefaultStyles()}
}

// Begin clears the buffer for a new frame.
func (r *Renderer) Begin() {
	r.screen.Clear()
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// DrawBox draws a single-line frame with an optional title on the top edge.
func (r *Renderer) DrawBox(rect Rect, title string) {
	style := r.styles.Border()
	for x := rect.X0 + 1; x < rect.X1; x++ {
		r.screen.SetContent(x, rect.Y0, tcell.RuneHLine, style)
		r.screen.SetContent(x, rect.Y1, tcell.RuneHLine, style)
	}
	for y := rect.Y0 + 1; y < rect.Y1; y++ {
		r.screen.SetContent(rect.X0, y, tcell.RuneVLine, style)
		r.screen.SetContent(rect.X1, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(rect.X0, rect.Y0, tcell.RuneULCorner, style)
	r.screen.SetContent(rect.X1, rect.Y0, tcell.RuneURCorner, style)
	r.screen.SetContent(rect.X0, rect.Y1, tcell.RuneLLCorner, style)
	r.screen.SetContent(rect.X1, rect.Y1, tcell.RuneLRCorner, style)

	if title != "" {
		r.DrawText(rect.X0+2, rect.Y0, " "+title+" ", r.styles.Bold)
	}
}

// RenderStatus shows the party's cell and facing.
func (r *Renderer) RenderStatus(pos world.Position, facing world.Direction) {
	r.DrawBox(StatusRect, "STATUS")
	in := StatusRect.Inner()
	r.DrawText(in.X0+1, in.Y0, "FACING", r.styles.Bold)
	r.DrawText(in.X0+9, in.Y0, strings.ToUpper(facing.String()), r.styles.Regular)
	r.DrawText(in.X0+1, in.Y0+1, "CELL", r.styles.Bold)
	r.DrawText(in.X0+9, in.Y0+1, fmt.Sprintf("%d,%d", pos.X, pos.Y), r.styles.Regular)
}

// RenderParty draws the party list. When selecting is set, the member at
// cursor is marked.
func (r *Renderer) RenderParty(party *entity.Party, cursor int, selecting bool) {
	r.DrawBox(PartyRect, "PARTY")
	in := PartyRect.Inner()
	r.DrawText(in.X0+2, in.Y0, fmt.Sprintf("%-2s%-10s%4s%4s", "#", "NAME", "HP", "MP"), r.styles.Bold)

	for i, member := range party.Members {
		y := in.Y0 + 1 + i
		if y > in.Y1 {
			break
		}
		if selecting && i == cursor {
			r.DrawText(in.X0, y, ">", r.styles.Bold)
		}
		x := r.DrawText(in.X0+2, y, fmt.Sprintf("%-2d", i+1), r.styles.Regular)
		x = r.DrawText(x, y, fmt.Sprintf("%-10s", member.Name), r.styles.Colored(member.Class.TCellColor()))
		r.DrawText(x, y, fmt.Sprintf("%4d%4d", member.HP, member.MP), r.styles.Regular)
	}
}

// RenderControls lists the keys available in the current mode.
func (r *Renderer) RenderControls(lines []string) {
	r.DrawBox(ControlsRect, "CONTROLS")
	in := ControlsRect.Inner()
	for i, line := range lines {
		if in.Y0+i > in.Y1 {
			break
		}
		r.DrawText(in.X0+1, in.Y0+i, line, r.styles.Regular)
	}
}

type statLine struct {
	label     string
	value     int
	baseValue int
}

// RenderCharacterSheet draws one member's sheet with the selected
// equipment slot marked.
func (r *Renderer) RenderCharacterSheet(c *entity.Character, selected gamedata.Slot) {
	r.DrawBox(SheetRect, "CHARACTER")
	in := SheetRect.Inner()
	x := in.X0 + 1
	y := in.Y0

	r.DrawText(x, y, c.Name, r.styles.Bold.Foreground(c.Class.TCellColor()))
	r.DrawText(x+12, y, fmt.Sprintf("%s  LV %d", c.ClassName(), c.Level), r.styles.Regular)
	y++
	r.DrawText(x, y, fmt.Sprintf("HP %3d/%-3d  MP %3d/%-3d", c.HP, c.MaxHP, c.MP, c.MaxMP), r.styles.Regular)
	y += 2

	stats := c.Stats()
	lines := []statLine{
		{"ATTACK", stats.Attack, c.Base.Attack},
		{"DEFENSE", stats.Defense, c.Base.Defense},
		{"MAGIC", stats.Magic, c.Base.Magic},
		{"RESIST", stats.Resistance, c.Base.Resistance},
		{"AGILITY", stats.Agility, c.Base.Agility},
		{"LUCK", stats.Luck, c.Base.Luck},
	}
	for _, line := range lines {
		r.DrawText(x, y, line.label, r.styles.Bold)
		next := r.DrawText(x+9, y, fmt.Sprintf("%3d", line.value), r.styles.Regular)
		if line.value != line.baseValue {
			r.DrawText(next+1, y, fmt.Sprintf("(BASE %d)", line.baseValue), r.styles.Dimmed())
		}
		y++
	}
	y++

	for _, slot := range gamedata.Slots {
		r.DrawText(x, y, slot.Label(), r.styles.Bold)
		name, style := EmptySlot, r.styles.Dimmed()
		if item := c.Item(slot); item != nil {
			name, style = item.Name, r.styles.Colored(item.TCellColor())
		}
		next := r.DrawText(x+9, y, name, style)
		if slot == selected {
			r.DrawText(next+1, y, "<", r.styles.Bold)
		}
		y++
	}
}

// InventoryRows is how many items fit in the inventory panel at once.
var InventoryRows = InventoryRect.Inner().Height()

// inventoryWindow returns the first visible index for a list of n items,
// keeping the cursor centered where possible.
func inventoryWindow(n, cursor, rows int) int {
	start := cursor - rows/2
	start = min(start, n-rows)
	return max(start, 0)
}

// RenderInventory draws the item list with the cursor marked. Items that
// enabled rejects are dimmed.
func (r *Renderer) RenderInventory(title string, items []*gamedata.ItemDef, cursor int, enabled func(*gamedata.ItemDef) bool) {
	r.DrawBox(InventoryRect, title)
	in := InventoryRect.Inner()
	if len(items) == 0 {
		r.DrawText(in.X0+2, in.Y0, "(EMPTY)", r.styles.Dimmed())
		return
	}

	start := inventoryWindow(len(items), cursor, InventoryRows)
	for row := 0; row < InventoryRows && start+row < len(items); row++ {
		i := start + row
		item := items[i]
		y := in.Y0 + row
		if i == cursor {
			r.DrawText(in.X0, y, ">", r.styles.Bold)
		}
		style := r.styles.Colored(item.TCellColor())
		if !enabled(item) {
			style = r.styles.Dimmed()
		}
		next := r.DrawText(in.X0+2, y, item.Name, style)
		if item.Slot != gamedata.SlotNone {
			r.DrawText(max(next+1, in.X0+24), y, item.Slot.Label(), r.styles.Dimmed())
		}
	}
	if start > 0 {
		r.DrawText(in.X1-1, in.Y0, "^", r.styles.Bold)
	}
	if start+InventoryRows < len(items) {
		r.DrawText(in.X1-1, in.Y1, "v", r.styles.Bold)
	}
}

// RenderItemDetails draws the name and description of item. A nil item
// leaves the panel empty.
func (r *Renderer) RenderItemDetails(item *gamedata.ItemDef) {
	r.DrawBox(DetailsRect, "DETAILS")
	if item == nil {
		return
	}
	in := DetailsRect.Inner()
	r.DrawText(in.X0+1, in.Y0, item.Name, r.styles.Bold.Foreground(item.TCellColor()))
	for i, line := range item.Description {
		y := in.Y0 + 1 + i
		if y > in.Y1 {
			break
		}
		r.DrawText(in.X0+1, y, line, r.styles.Regular)
	}
}
