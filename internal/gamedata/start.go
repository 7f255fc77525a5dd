package gamedata

// MemberDef describes one starting party member.
type MemberDef struct {
	Name   string `json:"name"`
	Class  string `json:"class"`
	Level  int    `json:"level"`
	Weapon string `json:"weapon,omitempty"`
	Shield string `json:"shield,omitempty"`
	Armor  string `json:"armor,omitempty"`
}

// Equipped returns the starting item ID for a slot, or "".
func (m *MemberDef) Equipped(slot Slot) string {
	switch slot {
	case SlotWeapon:
		return m.Weapon
	case SlotShield:
		return m.Shield
	case SlotArmor:
		return m.Armor
	default:
		return ""
	}
}

// StartFile represents the structure of start.json: the party and the
// unequipped items a new game begins with.
type StartFile struct {
	Party     []MemberDef `json:"party"`
	Inventory []string    `json:"inventory"`
}

// LoadStart loads the starting party and inventory.
func LoadStart() (StartFile, error) {
	return Load[StartFile]("start.json")
}
