package game

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiostardust/blackbox/internal/entity"
	"github.com/studiostardust/blackbox/internal/ui"
)

func newTestRenderer(t *testing.T) (*ui.Renderer, *ui.Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)
	return ui.NewRenderer(screen), screen
}

func screenText(s *ui.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _ := s.Content(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestDrawEveryScene(t *testing.T) {
	g := newTestGame(t)
	r, screen := newTestRenderer(t)

	g.Draw(r)
	text := screenText(screen)
	assert.Contains(t, text, "ALDRIC")
	assert.Contains(t, text, "FACING")

	press(g, KeyParty, KeyConfirm)
	g.Draw(r)
	text = screenText(screen)
	assert.Contains(t, text, "BRONZE SWORD")
	assert.Contains(t, text, "WEAPON")

	press(g, KeyConfirm)
	g.Draw(r)
	text = screenText(screen)
	assert.Contains(t, text, "EQUIP ALDRIC: WEAPON")
	assert.Contains(t, text, "OAK STAFF")
	assert.Contains(t, text, "IRON SWORD")
}

func TestDrawMidStep(t *testing.T) {
	g := newTestGame(t)
	r, _ := newTestRenderer(t)
	for _, k := range []Key{KeyUp, KeyStrafeRight, KeyStepBackward} {
		press(g, k)
		assert.NotPanics(t, func() { g.Draw(r) }, "drawing during %v", k)
	}
}

func TestDrawWithoutSceneIsFatal(t *testing.T) {
	g := newTestGame(t)
	r, _ := newTestRenderer(t)
	g.takeScene()
	assert.Panics(t, func() { g.Draw(r) })
}

func TestDrawVanishedEntries(t *testing.T) {
	g := newTestGame(t)
	r, _ := newTestRenderer(t)

	// The magician's sheet is open when the party shrinks under it.
	press(g, KeyParty, KeyDown, KeyConfirm)
	g.World().Party = entity.NewParty(g.World().Party.Get(0))
	assert.NotPanics(t, func() { g.Draw(r) })

	// Its inventory request now names a missing member, with the cursor
	// past the end of a shrunken inventory.
	press(g, KeyConfirm)
	vi, ok := g.Scene().(*ViewInventoryScene)
	require.True(t, ok, "scene = %T", g.Scene())
	vi.Cursor = 2
	g.World().Inventory = entity.NewInventory(oakStaff)

	assert.NotPanics(t, func() { g.Draw(r) })
	assert.Equal(t, 0, vi.Cursor)

	press(g, KeyConfirm)
	assert.Same(t, vi, g.Scene())

	press(g, KeyCancel)
	vc, ok := g.Scene().(*ViewCharacterScene)
	require.True(t, ok, "scene = %T", g.Scene())
	assert.Equal(t, 1, vc.Index)
	assert.NotPanics(t, func() { g.Draw(r) })
}
