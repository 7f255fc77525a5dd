package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/studiostardust/blackbox/internal/logger"
	"github.com/studiostardust/blackbox/internal/telemetry"
	"github.com/studiostardust/blackbox/internal/ui"
)

// Game holds the entire game state: the shared world and the single
// active scene.
type Game struct {
	world     *World
	scene     Scene
	running   bool
	cfg       Config
	sessionID string
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New creates a game that starts exploring w.
func New(w *World, cfg Config) *Game {
	sessionID := uuid.NewString()
	return &Game{
		world:     w,
		scene:     NewExploreScene(),
		running:   true,
		cfg:       cfg,
		sessionID: sessionID,
		logger:    logger.WithSession(cfg.logger(), sessionID),
		tracer:    telemetry.Tracer("game"),
	}
}

// World returns the shared world record.
func (g *Game) World() *World { return g.world }

// Scene returns the active scene.
func (g *Game) Scene() Scene { return g.scene }

// Running returns false once the player has asked to quit.
func (g *Game) Running() bool { return g.running }

// SessionID identifies this run in logs and traces.
func (g *Game) SessionID() string { return g.sessionID }

// HandleKey routes one key press to the active scene.
func (g *Game) HandleKey(ctx context.Context, key Key) {
	if key == KeyQuit {
		g.logger.Info("quit requested", "scene", kindOf(g.scene))
		g.running = false
		return
	}

	switch s := g.scene.(type) {
	case *ExploreScene:
		g.handleExploreKey(ctx, s, key)
	case *ViewCharacterScene:
		g.handleViewCharacterKey(ctx, s, key)
	case *ViewInventoryScene:
		g.handleViewInventoryKey(ctx, s, key)
	case nil:
		panic("game: key delivered with no active scene")
	default:
		panic(fmt.Sprintf("game: unhandled scene %T", s))
	}
}

// Update advances time-driven state by elapsed. Only the explore scene
// has anything to animate.
func (g *Game) Update(elapsed time.Duration) {
	switch s := g.scene.(type) {
	case *ExploreScene:
		s.tick(g.world, elapsed)
	case nil:
		panic("game: update with no active scene")
	}
}

// takeScene moves the active scene out, leaving the slot empty until the
// next transition fills it.
func (g *Game) takeScene() Scene {
	s := g.scene
	g.scene = nil
	return s
}

// transition installs next as the active scene.
func (g *Game) transition(ctx context.Context, from SceneKind, next Scene) {
	if next == nil {
		panic("game: transition to nil scene")
	}
	_, span := g.tracer.Start(ctx, "scene.transition")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("scene.from", from.String()),
		attribute.String("scene.to", next.Kind().String()),
	)
	span.End()

	g.logger.Debug("scene transition", "from", from, "to", next.Kind())
	g.scene = next
}

// Run executes the main game loop until the player quits or ctx is done.
// Events are read on a separate goroutine but handled one at a time here,
// interleaved with animation ticks.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	renderer := ui.NewRenderer(screen)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.tickInterval())
	defer ticker.Stop()
	last := time.Now()

	g.logger.Info("game started", "tick", g.cfg.tickInterval())
	for g.running {
		g.Draw(renderer)

		select {
		case <-ctx.Done():
			g.logger.Info("game interrupted", "err", ctx.Err())
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.HandleKey(ctx, KeyFromEvent(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			g.Update(now.Sub(last))
			last = now
		}
	}
	g.logger.Info("game stopped")
	return nil
}
