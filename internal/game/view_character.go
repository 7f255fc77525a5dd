package game

import (
	"context"

	"github.com/studiostardust/blackbox/internal/gamedata"
)

// ViewCharacterScene shows one party member's sheet with an equipment
// slot highlighted.
type ViewCharacterScene struct {
	Index int
	Slot  gamedata.Slot
}

// NewViewCharacterScene opens member i's sheet with the weapon slot selected.
func NewViewCharacterScene(i int) *ViewCharacterScene {
	return &ViewCharacterScene{Index: i, Slot: gamedata.SlotWeapon}
}

// Kind implements Scene.
func (s *ViewCharacterScene) Kind() SceneKind { return SceneViewCharacter }

func (s *ViewCharacterScene) scene() {}

func (g *Game) handleViewCharacterKey(ctx context.Context, s *ViewCharacterScene, key Key) {
	switch key {
	case KeyUp:
		s.Slot = s.Slot.Prev()
	case KeyDown:
		s.Slot = s.Slot.Next()
	case KeyConfirm:
		request := EquippableBy(s.Index, s.Slot)
		parent := g.takeScene()
		g.transition(ctx, SceneViewCharacter, &ViewInventoryScene{
			Parent:  parent,
			Request: request,
		})
	case KeyCancel:
		g.transition(ctx, SceneViewCharacter, exploreWithCursor(s.Index))
	}
}
