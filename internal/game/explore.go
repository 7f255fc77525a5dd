package game

import (
	"context"
	"time"
)

// ExploreScene is first-person movement through the level. With the party
// cursor set, arrow keys pick a party member instead of moving.
type ExploreScene struct {
	Anim *Animation

	cursor    int
	selecting bool
}

// NewExploreScene returns an idle explore scene with no party cursor.
func NewExploreScene() *ExploreScene {
	return &ExploreScene{}
}

// exploreWithCursor returns an explore scene with member i selected.
func exploreWithCursor(i int) *ExploreScene {
	return &ExploreScene{cursor: i, selecting: true}
}

// Kind implements Scene.
func (s *ExploreScene) Kind() SceneKind { return SceneExplore }

func (s *ExploreScene) scene() {}

// Cursor returns the selected party index and whether one is selected.
func (s *ExploreScene) Cursor() (int, bool) {
	return s.cursor, s.selecting
}

// startStep begins a step if the boundary in that direction is passable.
// Steps other than forward move the party immediately.
func (s *ExploreScene) startStep(w *World, kind StepKind) bool {
	d := kind.Direction(w.Facing)
	if !w.Level.IsPassable(w.Position, d) {
		return false
	}
	if !kind.deferred() {
		w.Step(d)
	}
	s.Anim = &Animation{Kind: kind, Remaining: StepDuration}
	return true
}

// finishStep ends any in-flight step, committing a deferred move.
func (s *ExploreScene) finishStep(w *World) {
	if s.Anim == nil {
		return
	}
	if s.Anim.Kind.deferred() {
		w.Step(s.Anim.Kind.Direction(w.Facing))
	}
	s.Anim = nil
}

// tick advances the in-flight step by elapsed.
func (s *ExploreScene) tick(w *World, elapsed time.Duration) {
	if s.Anim == nil {
		return
	}
	if s.Anim.Remaining <= elapsed {
		s.finishStep(w)
		return
	}
	s.Anim.Remaining -= elapsed
}

// handleExploreKey processes a key while exploring. Any in-flight step is
// finished first, so steps never queue.
func (g *Game) handleExploreKey(ctx context.Context, s *ExploreScene, key Key) {
	s.finishStep(g.world)

	if s.selecting {
		n := g.world.Party.Len()
		switch key {
		case KeyConfirm:
			if g.world.Party.Get(s.cursor) == nil {
				return
			}
			g.transition(ctx, SceneExplore, NewViewCharacterScene(s.cursor))
		case KeyCancel:
			s.selecting = false
			s.cursor = 0
		case KeyUp:
			if n > 0 {
				s.cursor = (s.cursor + n - 1) % n
			}
		case KeyDown:
			if n > 0 {
				s.cursor = (s.cursor + 1) % n
			}
		}
		return
	}

	switch key {
	case KeyUp, KeyStepForward:
		g.step(s, StepForward)
	case KeyStepBackward:
		g.step(s, StepBackward)
	case KeyStrafeLeft:
		g.step(s, StepLeft)
	case KeyStrafeRight:
		g.step(s, StepRight)
	case KeyDown:
		g.world.Facing = g.world.Facing.Reverse()
	case KeyLeft:
		g.world.Facing = g.world.Facing.Left()
	case KeyRight:
		g.world.Facing = g.world.Facing.Right()
	case KeyParty:
		if g.world.Party.Len() > 0 {
			s.cursor = 0
			s.selecting = true
		}
	case KeyItems:
		parent := g.takeScene()
		g.transition(ctx, SceneExplore, &ViewInventoryScene{
			Parent:  parent,
			Request: AnyItem(),
		})
	}
}

// step starts a step animation and logs whether it was blocked.
func (g *Game) step(s *ExploreScene, kind StepKind) {
	if !s.startStep(g.world, kind) {
		g.logger.Debug("step blocked",
			"step", kind,
			"x", g.world.Position.X,
			"y", g.world.Position.Y,
			"facing", g.world.Facing,
		)
	}
}
