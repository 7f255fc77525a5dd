// Package game provides the scene state machine, input routing, and the
// main loop.
package game

// SceneKind names the variant of a scene, for logs and telemetry.
type SceneKind int

const (
	// SceneNone marks the empty slot left while a scene is being moved.
	SceneNone SceneKind = iota
	// SceneExplore is first-person movement, optionally with a party cursor.
	SceneExplore
	// SceneViewCharacter is one party member's sheet and equipment.
	SceneViewCharacter
	// SceneViewInventory is the item list, opened as a modal request.
	SceneViewInventory
)

// String returns a human-readable scene name.
func (k SceneKind) String() string {
	switch k {
	case SceneNone:
		return "none"
	case SceneExplore:
		return "explore"
	case SceneViewCharacter:
		return "view_character"
	case SceneViewInventory:
		return "view_inventory"
	default:
		return "unknown"
	}
}

// Scene is the active interactive mode and the state it needs to resume.
// The set of scenes is closed: only the types in this package implement it.
type Scene interface {
	Kind() SceneKind
	scene()
}

// kindOf returns the kind of s, treating a nil scene as SceneNone.
func kindOf(s Scene) SceneKind {
	if s == nil {
		return SceneNone
	}
	return s.Kind()
}
