package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ViewInventoryScene is the item list opened as a modal request. Parent is
// the suspended scene it returns to, and Request decides which items may
// be chosen.
type ViewInventoryScene struct {
	Cursor  int
	Parent  Scene
	Request Predicate
}

// Kind implements Scene.
func (s *ViewInventoryScene) Kind() SceneKind { return SceneViewInventory }

func (s *ViewInventoryScene) scene() {}

// clampCursor keeps the cursor inside an inventory of n items. An empty
// inventory pins it to zero.
func (s *ViewInventoryScene) clampCursor(n int) {
	switch {
	case n == 0:
		s.Cursor = 0
	case s.Cursor >= n:
		s.Cursor = n - 1
	case s.Cursor < 0:
		s.Cursor = 0
	}
}

// takeParent moves the suspended scene out so the finished inventory scene
// no longer refers to it.
func (s *ViewInventoryScene) takeParent() Scene {
	parent := s.Parent
	s.Parent = nil
	return parent
}

func (g *Game) handleViewInventoryKey(ctx context.Context, s *ViewInventoryScene, key Key) {
	n := g.world.Inventory.Len()
	s.clampCursor(n)

	switch key {
	case KeyUp:
		if n > 0 {
			s.Cursor = (s.Cursor + n - 1) % n
		}
	case KeyDown:
		if n > 0 {
			s.Cursor = (s.Cursor + 1) % n
		}
	case KeyCancel:
		g.takeScene()
		g.transition(ctx, SceneViewInventory, s.takeParent())
	case KeyConfirm:
		item := g.world.Inventory.Get(s.Cursor)
		if !s.Request.Matches(item, g.world) {
			g.logger.Debug("inventory selection rejected",
				"request", s.Request,
				"cursor", s.Cursor,
			)
			return
		}
		g.takeScene()
		g.resolveRequest(ctx, s.Request, s.Cursor)
		g.transition(ctx, SceneViewInventory, s.takeParent())
	}
}

// resolveRequest applies the effect of an accepted selection.
func (g *Game) resolveRequest(ctx context.Context, request Predicate, index int) {
	switch request.Kind {
	case PredicateEquippable:
		_, span := g.tracer.Start(ctx, "inventory.equip")
		defer span.End()

		equipped, replaced, ok := g.world.Equip(request.Member, request.Slot, index)
		span.SetAttributes(
			attribute.Int("party.member", request.Member),
			attribute.String("item.slot", string(request.Slot)),
			attribute.Bool("equip.ok", ok),
		)
		if !ok {
			g.logger.Warn("equip failed", "request", request, "index", index)
			return
		}
		replacedID := ""
		if replaced != nil {
			replacedID = replaced.ID
		}
		span.SetAttributes(
			attribute.String("item.equipped", equipped.ID),
			attribute.String("item.replaced", replacedID),
		)
		g.logger.Info("item equipped",
			"member", request.Member,
			"slot", request.Slot,
			"item", equipped.ID,
			"replaced", replacedID,
		)
	}
}
