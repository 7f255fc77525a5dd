package game

import (
	"fmt"

	"github.com/studiostardust/blackbox/internal/gamedata"
)

// PredicateKind is the intent behind an inventory request.
type PredicateKind int

const (
	// PredicateAny accepts every item; used when browsing.
	PredicateAny PredicateKind = iota
	// PredicateEquippable accepts items a given member can wear in a given slot.
	PredicateEquippable
)

// Predicate decides whether the highlighted item may be chosen during one
// inventory visit. It is a plain value so it can be compared and logged.
type Predicate struct {
	Kind   PredicateKind
	Member int
	Slot   gamedata.Slot
}

// AnyItem returns the predicate that accepts every item.
func AnyItem() Predicate {
	return Predicate{Kind: PredicateAny}
}

// EquippableBy returns the predicate for equipping party member i's slot.
func EquippableBy(member int, slot gamedata.Slot) Predicate {
	return Predicate{Kind: PredicateEquippable, Member: member, Slot: slot}
}

// Matches evaluates the predicate for item against the world. It never
// mutates anything.
func (p Predicate) Matches(item *gamedata.ItemDef, w *World) bool {
	if item == nil {
		return false
	}
	switch p.Kind {
	case PredicateAny:
		return true
	case PredicateEquippable:
		character := w.Party.Get(p.Member)
		return character != nil && character.CanEquip(item, p.Slot)
	default:
		return false
	}
}

// String returns a compact description for logs.
func (p Predicate) String() string {
	switch p.Kind {
	case PredicateAny:
		return "any"
	case PredicateEquippable:
		return fmt.Sprintf("equippable(%d,%s)", p.Member, p.Slot)
	default:
		return "unknown"
	}
}
