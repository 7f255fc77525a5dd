package entity

import "github.com/studiostardust/blackbox/internal/gamedata"

// Inventory is the party's ordered list of unequipped items. Order only
// matters for display and cursor positions.
type Inventory struct {
	Items []*gamedata.ItemDef
}

// NewInventory creates an inventory holding the given items.
func NewInventory(items ...*gamedata.ItemDef) *Inventory {
	return &Inventory{Items: items}
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.Items)
}

// Get returns the item at index i, or nil if i is out of range.
func (inv *Inventory) Get(i int) *gamedata.ItemDef {
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	return inv.Items[i]
}

// Remove takes the item at index i out of the list, shifting later items
// up. It returns nil and leaves the list alone if i is out of range.
func (inv *Inventory) Remove(i int) *gamedata.ItemDef {
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	item := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return item
}

// Append adds an item to the end of the list.
func (inv *Inventory) Append(item *gamedata.ItemDef) {
	if item == nil {
		return
	}
	inv.Items = append(inv.Items, item)
}
