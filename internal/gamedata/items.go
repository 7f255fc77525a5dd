package gamedata

import "slices"

// Slot is an equipment slot on a character.
type Slot string

const (
	SlotNone   Slot = ""
	SlotWeapon Slot = "weapon"
	SlotShield Slot = "shield"
	SlotArmor  Slot = "armor"
)

// Slots lists the equipment slots in display order.
var Slots = []Slot{SlotWeapon, SlotShield, SlotArmor}

// Label returns the slot's heading on the character sheet.
func (s Slot) Label() string {
	switch s {
	case SlotWeapon:
		return "WEAPON"
	case SlotShield:
		return "SHIELD"
	case SlotArmor:
		return "ARMOR"
	default:
		return "NONE"
	}
}

// Next returns the slot below s, wrapping from armor back to weapon.
func (s Slot) Next() Slot {
	switch s {
	case SlotWeapon:
		return SlotShield
	case SlotShield:
		return SlotArmor
	default:
		return SlotWeapon
	}
}

// Prev returns the slot above s, wrapping from weapon to armor.
func (s Slot) Prev() Slot {
	switch s {
	case SlotWeapon:
		return SlotArmor
	case SlotShield:
		return SlotWeapon
	default:
		return SlotShield
	}
}

// ItemDef defines an item loaded from JSON. Item definitions are shared and
// never mutated; inventories and equipment slots hold pointers to them.
type ItemDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slot        Slot     `json:"slot,omitempty"`    // Empty for items that cannot be equipped
	Classes     []string `json:"classes,omitempty"` // Class IDs allowed to equip; empty means any
	Color       string   `json:"color"`
	Bonus       Stats    `json:"bonus"`
	Description []string `json:"description"`
}

// EquippableBy reports whether a character of the given class may wear the
// item in the given slot.
func (i *ItemDef) EquippableBy(classID string, slot Slot) bool {
	if i.Slot == SlotNone || i.Slot != slot {
		return false
	}
	return len(i.Classes) == 0 || slices.Contains(i.Classes, classID)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
