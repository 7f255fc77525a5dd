package game

import (
	"github.com/studiostardust/blackbox/internal/entity"
	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/world"
)

// World is the shared game record that scenes read and mutate. It is never
// replaced wholesale.
type World struct {
	Level     *world.Level
	Position  world.Position
	Facing    world.Direction
	Party     *entity.Party
	Inventory *entity.Inventory
}

// Step moves the party one cell in direction d, wrapping at the level edge.
func (w *World) Step(d world.Direction) {
	w.Position = w.Level.MoveBy(w.Position, d, 1)
}

// Equip moves the inventory item at itemIndex into the given slot of the
// given party member, appending whatever was equipped there to the end of
// the inventory. Nothing changes unless the member exists, the item exists,
// and the member can equip it in that slot.
func (w *World) Equip(member int, slot gamedata.Slot, itemIndex int) (equipped, replaced *gamedata.ItemDef, ok bool) {
	character := w.Party.Get(member)
	item := w.Inventory.Get(itemIndex)
	if character == nil || item == nil || !character.CanEquip(item, slot) {
		return nil, nil, false
	}

	w.Inventory.Remove(itemIndex)
	replaced = character.SetItem(slot, item)
	w.Inventory.Append(replaced)
	return item, replaced, true
}
