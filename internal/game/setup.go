package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/studiostardust/blackbox/internal/entity"
	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/telemetry"
	"github.com/studiostardust/blackbox/internal/world"
)

// NewWorld builds the starting world: the configured level, the party and
// inventory from the bundle's start data, and the starting cell.
func NewWorld(ctx context.Context, cfg Config, bundle *gamedata.Bundle) (*World, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	party, inventory, err := entity.NewStartingParty(bundle)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("build starting party: %w", err)
	}

	w := &World{
		Facing:    world.South,
		Party:     party,
		Inventory: inventory,
	}

	switch cfg.Level {
	case LevelGenerated:
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gen := world.NewGenerator(world.DefaultWidth, world.DefaultHeight, rand.New(rand.NewSource(seed)))
		w.Level, w.Position = gen.Generate(ctx)
		span.SetAttributes(
			attribute.Int64("level.seed", seed),
			attribute.Int("level.rooms", len(gen.Rooms)),
		)
	case LevelExample, "":
		w.Level = world.ExampleLevel()
	default:
		err := fmt.Errorf("unknown level source %q", cfg.Level)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("level.source", cfg.Level),
		attribute.Int("party.size", party.Len()),
		attribute.Int("inventory.size", inventory.Len()),
		attribute.Int("party.start_x", w.Position.X),
		attribute.Int("party.start_y", w.Position.Y),
	)
	return w, nil
}
