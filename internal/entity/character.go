// Package entity provides the party, its characters, and the inventory.
package entity

import "github.com/studiostardust/blackbox/internal/gamedata"

// Character is an individual party member.
type Character struct {
	Name  string
	Class *gamedata.ClassDef
	Level int

	HP, MaxHP int
	MP, MaxMP int
	Base      gamedata.Stats

	weapon *gamedata.ItemDef
	shield *gamedata.ItemDef
	armor  *gamedata.ItemDef
}

// NewCharacter creates a character with the class's starting stats.
func NewCharacter(name string, class *gamedata.ClassDef, level int) *Character {
	return &Character{
		Name:  name,
		Class: class,
		Level: level,
		HP:    class.HP,
		MaxHP: class.HP,
		MP:    class.MP,
		MaxMP: class.MP,
		Base:  class.Stats,
	}
}

// ClassID returns the character's class identifier.
func (c *Character) ClassID() string {
	if c.Class == nil {
		return ""
	}
	return c.Class.ID
}

// ClassName returns the character's class display name.
func (c *Character) ClassName() string {
	if c.Class == nil {
		return "UNKNOWN"
	}
	return c.Class.Name
}

// Item returns what is equipped in slot, or nil.
func (c *Character) Item(slot gamedata.Slot) *gamedata.ItemDef {
	switch slot {
	case gamedata.SlotWeapon:
		return c.weapon
	case gamedata.SlotShield:
		return c.shield
	case gamedata.SlotArmor:
		return c.armor
	default:
		return nil
	}
}

// SetItem puts item (possibly nil) into slot and returns what was there.
// It does not check compatibility; see CanEquip.
func (c *Character) SetItem(slot gamedata.Slot, item *gamedata.ItemDef) *gamedata.ItemDef {
	var target **gamedata.ItemDef
	switch slot {
	case gamedata.SlotWeapon:
		target = &c.weapon
	case gamedata.SlotShield:
		target = &c.shield
	case gamedata.SlotArmor:
		target = &c.armor
	default:
		return nil
	}
	previous := *target
	*target = item
	return previous
}

// CanEquip reports whether item fits slot for this character's class.
func (c *Character) CanEquip(item *gamedata.ItemDef, slot gamedata.Slot) bool {
	return item != nil && item.EquippableBy(c.ClassID(), slot)
}

// Stats returns base stats plus the bonuses of everything equipped.
func (c *Character) Stats() gamedata.Stats {
	total := c.Base
	for _, slot := range gamedata.Slots {
		if item := c.Item(slot); item != nil {
			total = total.Add(item.Bonus)
		}
	}
	return total
}

// Attack returns effective attack.
func (c *Character) Attack() int { return c.Stats().Attack }

// Defense returns effective defense.
func (c *Character) Defense() int { return c.Stats().Defense }

// Magic returns effective magic attack.
func (c *Character) Magic() int { return c.Stats().Magic }

// Resistance returns effective magic defense.
func (c *Character) Resistance() int { return c.Stats().Resistance }

// Agility returns effective agility.
func (c *Character) Agility() int { return c.Stats().Agility }

// Luck returns effective luck.
func (c *Character) Luck() int { return c.Stats().Luck }
