package game

import (
	"log/slog"
	"time"
)

// Level sources.
const (
	LevelExample   = "example"
	LevelGenerated = "generated"
)

// DefaultTickInterval is how often the run loop advances animations.
const DefaultTickInterval = 16 * time.Millisecond

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Level picks the level source, LevelExample or LevelGenerated.
	Level string

	// TickInterval is the animation frame period.
	TickInterval time.Duration

	// Logger receives game events. Nil means slog.Default().
	Logger *slog.Logger
}

func (c Config) tickInterval() time.Duration {
	if c.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return c.TickInterval
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
