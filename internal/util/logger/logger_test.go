package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SetOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	log := Logger("test")
	log.Info("test message", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "subsystem=test")
	assert.Contains(t, out, "level=info")
}

func TestLogger_SameInstance(t *testing.T) {
	assert.Same(t, Logger("same"), Logger("same"))
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	log := Logger("leveled").With("cell", "a")
	SetLevel("leveled", slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "cell=a")
}

func TestParseConfig(t *testing.T) {
	cfg := ParseConfig("hive=debug, automaton=warn,error", "JSON", "true")

	assert.Equal(t, slog.LevelError, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelFor("hive"))
	assert.Equal(t, slog.LevelWarn, cfg.LevelFor("automaton"))
	assert.Equal(t, slog.LevelError, cfg.LevelFor("transport"))
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.AddSource)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	resetConfig()
	defer resetConfig()

	assert.Equal(t, slog.LevelWarn, ConfigFromEnv().DefaultLevel)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
