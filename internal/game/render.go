package game

import (
	"fmt"

	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/ui"
)

var (
	exploreControls = []string{
		"W/UP   STEP  S BACK",
		"A/D    STRAFE",
		"LEFT/RIGHT TURN",
		"DOWN   TURN AROUND",
		"P PARTY  I ITEMS  Q QUIT",
	}
	partyControls = []string{
		"UP/DOWN  SELECT",
		"ENTER    VIEW",
		"ESC      BACK",
	}
	characterControls = []string{
		"UP/DOWN  SLOT",
		"ENTER    EQUIP",
		"ESC      BACK",
	}
	inventoryControls = []string{
		"UP/DOWN  SELECT",
		"ENTER    CHOOSE",
		"ESC      BACK",
	}
)

// Draw renders one frame of the active scene.
func (g *Game) Draw(r *ui.Renderer) {
	r.Begin()
	defer r.Show()

	switch s := g.scene.(type) {
	case *ExploreScene:
		g.drawExplore(r, s)
	case *ViewCharacterScene:
		g.drawViewCharacter(r, s)
	case *ViewInventoryScene:
		g.drawViewInventory(r, s)
	case nil:
		panic("game: draw with no active scene")
	default:
		panic(fmt.Sprintf("game: unhandled scene %T", s))
	}
}

func (g *Game) drawExplore(r *ui.Renderer, s *ExploreScene) {
	lateral, forward := s.Anim.ViewOffset()
	r.RenderViewport(ui.View{
		Level:    g.world.Level,
		Position: g.world.Position,
		Facing:   g.world.Facing,
		Lateral:  lateral,
		Forward:  forward,
	})
	r.RenderStatus(g.world.Position, g.world.Facing)

	cursor, selecting := s.Cursor()
	r.RenderParty(g.world.Party, cursor, selecting)
	if selecting {
		r.RenderControls(partyControls)
	} else {
		r.RenderControls(exploreControls)
	}
}

func (g *Game) drawViewCharacter(r *ui.Renderer, s *ViewCharacterScene) {
	if member := g.world.Party.Get(s.Index); member != nil {
		r.RenderCharacterSheet(member, s.Slot)
	}
	r.RenderParty(g.world.Party, s.Index, true)
	r.RenderControls(characterControls)
}

func (g *Game) drawViewInventory(r *ui.Renderer, s *ViewInventoryScene) {
	s.clampCursor(g.world.Inventory.Len())

	title := "ITEMS"
	if s.Request.Kind == PredicateEquippable {
		if member := g.world.Party.Get(s.Request.Member); member != nil {
			title = fmt.Sprintf("EQUIP %s: %s", member.Name, s.Request.Slot.Label())
		}
	}
	r.RenderInventory(title, g.world.Inventory.Items, s.Cursor, func(item *gamedata.ItemDef) bool {
		return s.Request.Matches(item, g.world)
	})
	r.RenderItemDetails(g.world.Inventory.Get(s.Cursor))
	r.RenderControls(inventoryControls)
}
