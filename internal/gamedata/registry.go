package gamedata

import (
	"errors"
	"fmt"
)

// ClassRegistry holds loaded class definitions keyed by ID.
type ClassRegistry struct {
	classes map[string]*ClassDef
	all     []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: make(map[string]*ClassDef),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// GetByID returns the class definition with the given ID, or nil if not found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.classes[id]
}

// All returns all class definitions.
func (r *ClassRegistry) All() []ClassDef {
	return r.all
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions keyed by ID.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// Lookup returns the item with the given ID or an error naming it.
func (r *ItemRegistry) Lookup(id string) (*ItemDef, error) {
	item := r.items[id]
	if item == nil {
		return nil, fmt.Errorf("unknown item %q", id)
	}
	return item, nil
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// Bundle
// =============================================================================

// Bundle is every piece of embedded data the game reads at startup. It is
// loaded once and treated as read-only afterwards.
type Bundle struct {
	Classes *ClassRegistry
	Items   *ItemRegistry
	Start   StartFile
}

// LoadBundle loads classes, items, and the starting party, and checks that
// every reference between them resolves.
func LoadBundle() (*Bundle, error) {
	classes, err := LoadClassRegistry()
	if err != nil {
		return nil, err
	}
	items, err := LoadItemRegistry()
	if err != nil {
		return nil, err
	}
	start, err := LoadStart()
	if err != nil {
		return nil, err
	}

	for _, m := range start.Party {
		if classes.GetByID(m.Class) == nil {
			return nil, fmt.Errorf("party member %s: unknown class %q", m.Name, m.Class)
		}
		for _, slot := range Slots {
			id := m.Equipped(slot)
			if id == "" {
				continue
			}
			item, err := items.Lookup(id)
			if err != nil {
				return nil, fmt.Errorf("party member %s: %w", m.Name, err)
			}
			if !item.EquippableBy(m.Class, slot) {
				return nil, fmt.Errorf("party member %s cannot equip %s as %s", m.Name, id, slot)
			}
		}
	}
	for _, id := range start.Inventory {
		if _, err := items.Lookup(id); err != nil {
			return nil, fmt.Errorf("starting inventory: %w", err)
		}
	}

	return &Bundle{Classes: classes, Items: items, Start: start}, nil
}

// MustLoadBundle loads the bundle, panicking on error.
func MustLoadBundle() *Bundle {
	bundle, err := LoadBundle()
	if err != nil {
		panic(err)
	}
	return bundle
}
