package gamedata

// Stats is a block of the six character attributes. Item bonuses use the
// same shape and may be negative.
type Stats struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Magic      int `json:"magic"`
	Resistance int `json:"resistance"`
	Agility    int `json:"agility"`
	Luck       int `json:"luck"`
}

// Add returns the field-wise sum of two stat blocks.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Attack:     s.Attack + o.Attack,
		Defense:    s.Defense + o.Defense,
		Magic:      s.Magic + o.Magic,
		Resistance: s.Resistance + o.Resistance,
		Agility:    s.Agility + o.Agility,
		Luck:       s.Luck + o.Luck,
	}
}

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "warrior")
	Name   string `json:"name"`   // Display name (e.g., "WARRIOR")
	Symbol string `json:"symbol"` // Single character for rendering (e.g., "W")
	Color  string `json:"color"`  // Hex color code for the party list
	HP     int    `json:"hp"`     // Starting hit points
	MP     int    `json:"mp"`     // Starting mana points
	Stats  Stats  `json:"stats"`  // Starting base stats
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
