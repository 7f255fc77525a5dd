package entity

import (
	"fmt"

	"github.com/studiostardust/blackbox/internal/gamedata"
)

// Party is the player's fixed group of adventurers, in marching order.
type Party struct {
	Members []*Character
}

// NewParty creates a party from the given members.
func NewParty(members ...*Character) *Party {
	return &Party{Members: members}
}

// Len returns the number of members.
func (p *Party) Len() int {
	return len(p.Members)
}

// Get returns the member at index i, or nil if i is out of range.
func (p *Party) Get(i int) *Character {
	if i < 0 || i >= len(p.Members) {
		return nil
	}
	return p.Members[i]
}

// NewStartingParty builds the party and inventory described by the bundle's
// start data.
func NewStartingParty(b *gamedata.Bundle) (*Party, *Inventory, error) {
	party := &Party{}
	for _, def := range b.Start.Party {
		class := b.Classes.GetByID(def.Class)
		if class == nil {
			return nil, nil, fmt.Errorf("party member %s: unknown class %q", def.Name, def.Class)
		}
		member := NewCharacter(def.Name, class, def.Level)
		for _, slot := range gamedata.Slots {
			id := def.Equipped(slot)
			if id == "" {
				continue
			}
			item, err := b.Items.Lookup(id)
			if err != nil {
				return nil, nil, fmt.Errorf("party member %s: %w", def.Name, err)
			}
			member.SetItem(slot, item)
		}
		party.Members = append(party.Members, member)
	}

	inventory := &Inventory{}
	for _, id := range b.Start.Inventory {
		item, err := b.Items.Lookup(id)
		if err != nil {
			return nil, nil, fmt.Errorf("starting inventory: %w", err)
		}
		inventory.Append(item)
	}
	return party, inventory, nil
}
