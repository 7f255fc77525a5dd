package logger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiostardust/blackbox/internal/config"
)

func TestSetupWritesFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "blackbox.log")
	cfg.LogLevel = "debug"

	logger, closeFn, err := Setup(cfg)
	require.NoError(t, err)
	WithSession(logger, "abc").Debug("scene transition", "to", "explore")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "level=DEBUG")
	assert.Contains(t, line, "session_id=abc")
	assert.Contains(t, line, "to=explore")
}

func TestSetupProductionJSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := config.Default()
	cfg.Environment = "production"
	cfg.LogFile = filepath.Join(t.TempDir(), "blackbox.log")

	logger, closeFn, err := Setup(cfg)
	require.NoError(t, err)
	WithError(logger, errors.New("boom")).Info("startup")
	logger.Debug("filtered out")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "startup", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestSetupDiscards(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := config.Default()
	cfg.LogFile = ""
	logger, closeFn, err := Setup(cfg)
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closeFn())
	assert.Same(t, logger, slog.Default())
}

func TestSetupBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "dir", "blackbox.log")
	_, _, err := Setup(cfg)
	assert.Error(t, err)
}
