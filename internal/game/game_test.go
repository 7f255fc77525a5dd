package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiostardust/blackbox/internal/entity"
	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/world"
)

var (
	warriorClass  = &gamedata.ClassDef{ID: "warrior", Name: "WARRIOR", HP: 24}
	magicianClass = &gamedata.ClassDef{ID: "magician", Name: "MAGICIAN", HP: 12, MP: 18}

	bronzeSword = &gamedata.ItemDef{ID: "bronze_sword", Name: "BRONZE SWORD", Slot: gamedata.SlotWeapon, Classes: []string{"warrior"}}
	ironSword   = &gamedata.ItemDef{ID: "iron_sword", Name: "IRON SWORD", Slot: gamedata.SlotWeapon, Classes: []string{"warrior"}}
	oakStaff    = &gamedata.ItemDef{ID: "oak_staff", Name: "OAK STAFF", Slot: gamedata.SlotWeapon, Classes: []string{"magician"}}
	buckler     = &gamedata.ItemDef{ID: "buckler", Name: "BUCKLER", Slot: gamedata.SlotShield}
)

// newTestGame returns a game on the example level at (0,0) facing south.
// The warrior holds a bronze sword; the inventory is staff, iron sword,
// buckler.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	warrior := entity.NewCharacter("ALDRIC", warriorClass, 1)
	warrior.SetItem(gamedata.SlotWeapon, bronzeSword)
	magician := entity.NewCharacter("CASIMIR", magicianClass, 1)

	w := &World{
		Level:     world.ExampleLevel(),
		Position:  world.Position{X: 0, Y: 0},
		Facing:    world.South,
		Party:     entity.NewParty(warrior, magician),
		Inventory: entity.NewInventory(oakStaff, ironSword, buckler),
	}
	return New(w, Config{})
}

func press(g *Game, keys ...Key) {
	for _, k := range keys {
		g.HandleKey(context.Background(), k)
	}
}

func exploreScene(t *testing.T, g *Game) *ExploreScene {
	t.Helper()
	s, ok := g.Scene().(*ExploreScene)
	require.True(t, ok, "scene = %T, want *ExploreScene", g.Scene())
	return s
}

func TestNewGameStartsExploring(t *testing.T) {
	g := newTestGame(t)
	s := exploreScene(t, g)
	assert.Nil(t, s.Anim)
	_, selecting := s.Cursor()
	assert.False(t, selecting)
	assert.True(t, g.Running())
	assert.NotEmpty(t, g.SessionID())
}

func TestStepForwardDefersMove(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyUp)

	s := exploreScene(t, g)
	require.NotNil(t, s.Anim)
	assert.Equal(t, StepForward, s.Anim.Kind)
	assert.Equal(t, StepDuration, s.Anim.Remaining)
	assert.Equal(t, world.Position{X: 0, Y: 0}, g.World().Position)

	g.Update(StepDuration / 2)
	require.NotNil(t, s.Anim)
	assert.Equal(t, StepDuration/2, s.Anim.Remaining)
	assert.Equal(t, world.Position{X: 0, Y: 0}, g.World().Position)

	g.Update(StepDuration / 2)
	assert.Nil(t, s.Anim)
	assert.Equal(t, world.Position{X: 0, Y: 1}, g.World().Position)
}

func TestStepBackwardCommitsImmediately(t *testing.T) {
	g := newTestGame(t)
	g.World().Position = world.Position{X: 5, Y: 5}
	g.World().Facing = world.East

	press(g, KeyStepBackward)
	s := exploreScene(t, g)
	require.NotNil(t, s.Anim)
	assert.Equal(t, StepBackward, s.Anim.Kind)
	assert.Equal(t, world.Position{X: 4, Y: 5}, g.World().Position)

	g.Update(StepDuration + 50)
	assert.Nil(t, s.Anim)
	assert.Equal(t, world.Position{X: 4, Y: 5}, g.World().Position)
}

func TestStrafeCommitsImmediately(t *testing.T) {
	tests := []struct {
		key  Key
		kind StepKind
		want world.Position
	}{
		{KeyStrafeLeft, StepLeft, world.Position{X: 5, Y: 4}},
		{KeyStrafeRight, StepRight, world.Position{X: 5, Y: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := newTestGame(t)
			g.World().Position = world.Position{X: 5, Y: 5}
			g.World().Facing = world.East

			press(g, tt.key)
			s := exploreScene(t, g)
			require.NotNil(t, s.Anim)
			assert.Equal(t, tt.kind, s.Anim.Kind)
			assert.Equal(t, tt.want, g.World().Position)

			g.Update(StepDuration)
			assert.Equal(t, tt.want, g.World().Position)
		})
	}
}

func TestBlockedStepDoesNothing(t *testing.T) {
	g := newTestGame(t)
	g.World().Facing = world.North

	press(g, KeyUp)
	s := exploreScene(t, g)
	assert.Nil(t, s.Anim)
	assert.Equal(t, world.Position{X: 0, Y: 0}, g.World().Position)

	press(g, KeyStrafeLeft) // west of (0,0) is the border
	assert.Nil(t, s.Anim)
	assert.Equal(t, world.Position{X: 0, Y: 0}, g.World().Position)
}

func TestStepThroughDoor(t *testing.T) {
	g := newTestGame(t)
	g.World().Position = world.Position{X: 4, Y: 4}
	g.World().Facing = world.West

	press(g, KeyUp)
	g.Update(StepDuration)
	assert.Equal(t, world.Position{X: 3, Y: 4}, g.World().Position)
}

func TestKeyFinishesAnimation(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyUp)
	press(g, KeyLeft)

	s := exploreScene(t, g)
	assert.Nil(t, s.Anim)
	assert.Equal(t, world.Position{X: 0, Y: 1}, g.World().Position)
	assert.Equal(t, world.East, g.World().Facing)

	// A second forward step starts from the committed cell.
	g.World().Facing = world.South
	press(g, KeyUp, KeyUp)
	require.NotNil(t, s.Anim)
	assert.Equal(t, world.Position{X: 0, Y: 2}, g.World().Position)
	g.Update(StepDuration)
	assert.Equal(t, world.Position{X: 0, Y: 3}, g.World().Position)
}

func TestTurning(t *testing.T) {
	tests := []struct {
		key  Key
		want world.Direction
	}{
		{KeyLeft, world.East},
		{KeyRight, world.West},
		{KeyDown, world.North},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			g := newTestGame(t)
			press(g, tt.key)
			assert.Equal(t, tt.want, g.World().Facing)
			assert.Equal(t, world.Position{X: 0, Y: 0}, g.World().Position)
			assert.Nil(t, exploreScene(t, g).Anim)
		})
	}
}

func TestPartySelectionAndCharacterView(t *testing.T) {
	g := newTestGame(t)

	press(g, KeyParty)
	cursor, selecting := exploreScene(t, g).Cursor()
	require.True(t, selecting)
	assert.Equal(t, 0, cursor)

	press(g, KeyConfirm)
	vc, ok := g.Scene().(*ViewCharacterScene)
	require.True(t, ok, "scene = %T", g.Scene())
	assert.Equal(t, ViewCharacterScene{Index: 0, Slot: gamedata.SlotWeapon}, *vc)

	press(g, KeyUp)
	assert.Equal(t, gamedata.SlotArmor, vc.Slot)
	press(g, KeyUp)
	assert.Equal(t, gamedata.SlotShield, vc.Slot)
	press(g, KeyDown)
	assert.Equal(t, gamedata.SlotArmor, vc.Slot)

	press(g, KeyCancel)
	cursor, selecting = exploreScene(t, g).Cursor()
	assert.True(t, selecting)
	assert.Equal(t, 0, cursor)
}

func TestPartyCursorWrapsAndCancels(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyUp)

	s := exploreScene(t, g)
	cursor, _ := s.Cursor()
	assert.Equal(t, 1, cursor)

	press(g, KeyDown)
	cursor, _ = s.Cursor()
	assert.Equal(t, 0, cursor)

	// Arrow keys drive the cursor, not the party.
	assert.Equal(t, world.South, g.World().Facing)
	assert.Nil(t, s.Anim)

	press(g, KeyCancel)
	_, selecting := s.Cursor()
	assert.False(t, selecting)
}

func TestPartyCursorReturnsToViewedMember(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyDown, KeyConfirm)

	vc, ok := g.Scene().(*ViewCharacterScene)
	require.True(t, ok)
	assert.Equal(t, 1, vc.Index)

	press(g, KeyCancel)
	cursor, selecting := exploreScene(t, g).Cursor()
	assert.True(t, selecting)
	assert.Equal(t, 1, cursor)
}

func TestEmptyPartyCannotSelect(t *testing.T) {
	g := newTestGame(t)
	g.World().Party = entity.NewParty()

	press(g, KeyParty, KeyUp, KeyConfirm)
	s := exploreScene(t, g)
	_, selecting := s.Cursor()
	assert.False(t, selecting)
}

func TestEquipFromCharacterView(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyConfirm, KeyConfirm)

	vi, ok := g.Scene().(*ViewInventoryScene)
	require.True(t, ok, "scene = %T", g.Scene())
	assert.Equal(t, EquippableBy(0, gamedata.SlotWeapon), vi.Request)
	assert.Equal(t, 0, vi.Cursor)
	parent, ok := vi.Parent.(*ViewCharacterScene)
	require.True(t, ok, "parent = %T", vi.Parent)
	assert.Equal(t, ViewCharacterScene{Index: 0, Slot: gamedata.SlotWeapon}, *parent)

	// The staff is magician-only, so confirming it does nothing.
	press(g, KeyConfirm)
	require.Same(t, vi, g.Scene())
	assert.Same(t, bronzeSword, g.World().Party.Get(0).Item(gamedata.SlotWeapon))

	press(g, KeyDown, KeyConfirm)
	vc, ok := g.Scene().(*ViewCharacterScene)
	require.True(t, ok, "scene = %T", g.Scene())
	assert.Same(t, parent, vc)
	assert.Equal(t, ViewCharacterScene{Index: 0, Slot: gamedata.SlotWeapon}, *vc)

	assert.Same(t, ironSword, g.World().Party.Get(0).Item(gamedata.SlotWeapon))
	assert.Equal(t, []*gamedata.ItemDef{oakStaff, buckler, bronzeSword}, g.World().Inventory.Items)

	// The finished inventory scene gave up its parent.
	assert.Nil(t, vi.Parent)
}

func TestEquipIntoEmptySlot(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyConfirm, KeyDown, KeyConfirm) // shield slot

	vi, ok := g.Scene().(*ViewInventoryScene)
	require.True(t, ok)
	assert.Equal(t, EquippableBy(0, gamedata.SlotShield), vi.Request)

	press(g, KeyDown, KeyDown, KeyConfirm)
	_, ok = g.Scene().(*ViewCharacterScene)
	require.True(t, ok)
	assert.Same(t, buckler, g.World().Party.Get(0).Item(gamedata.SlotShield))
	assert.Equal(t, []*gamedata.ItemDef{oakStaff, ironSword}, g.World().Inventory.Items)
}

func TestCancelInventoryRestoresParent(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyConfirm)
	parent := g.Scene()

	press(g, KeyConfirm)
	vi, ok := g.Scene().(*ViewInventoryScene)
	require.True(t, ok, "scene = %T", g.Scene())

	press(g, KeyDown, KeyCancel)
	assert.Same(t, parent, g.Scene())
	assert.Nil(t, vi.Parent)
	assert.Same(t, bronzeSword, g.World().Party.Get(0).Item(gamedata.SlotWeapon))
	assert.Equal(t, 3, g.World().Inventory.Len())
}

func TestBrowseInventoryFromExplore(t *testing.T) {
	g := newTestGame(t)
	explore := g.Scene()

	press(g, KeyItems)
	vi, ok := g.Scene().(*ViewInventoryScene)
	require.True(t, ok)
	assert.Equal(t, AnyItem(), vi.Request)
	assert.Same(t, explore, vi.Parent)

	press(g, KeyUp)
	assert.Equal(t, 2, vi.Cursor)
	press(g, KeyDown)
	assert.Equal(t, 0, vi.Cursor)

	// Accepting a browse selection changes nothing and returns.
	press(g, KeyConfirm)
	assert.Same(t, explore, g.Scene())
	assert.Equal(t, []*gamedata.ItemDef{oakStaff, ironSword, buckler}, g.World().Inventory.Items)
}

func TestEmptyInventory(t *testing.T) {
	g := newTestGame(t)
	g.World().Inventory = entity.NewInventory()
	press(g, KeyItems)
	vi := g.Scene().(*ViewInventoryScene)

	press(g, KeyUp, KeyDown)
	assert.Equal(t, 0, vi.Cursor)

	press(g, KeyConfirm)
	assert.Same(t, vi, g.Scene())

	press(g, KeyCancel)
	exploreScene(t, g)
}

func TestInventoryCursorClamps(t *testing.T) {
	tests := []struct {
		cursor, n, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{5, 3, 2},
		{-1, 3, 0},
		{1, 3, 1},
	}
	for _, tt := range tests {
		s := &ViewInventoryScene{Cursor: tt.cursor}
		s.clampCursor(tt.n)
		assert.Equal(t, tt.want, s.Cursor, "clampCursor(%d) from %d", tt.n, tt.cursor)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t)
	press(g, KeyParty, KeyConfirm)
	press(g, KeyQuit)
	assert.False(t, g.Running())
}

func TestNoSceneIsFatal(t *testing.T) {
	g := newTestGame(t)
	g.takeScene()
	assert.Panics(t, func() { press(g, KeyUp) })
	assert.Panics(t, func() { g.Update(StepDuration) })
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyConfirm},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyCancel},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyStepForward},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), KeyStepBackward},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), KeyStrafeLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), KeyStrafeRight},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), KeyParty},
		{"i", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), KeyItems},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromEvent(tt.ev))
		})
	}
}
