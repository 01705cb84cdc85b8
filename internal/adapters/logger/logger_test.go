package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cscript/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(logger.EnvLevel, "")
	t.Setenv(logger.EnvFormat, "")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newLogger(t)

	l.Debug("hidden")
	l.Info("shown")
	assert.Equal(t, "shown\n", buf.String())

	buf.Reset()
	l.SetLevel(slog.LevelDebug)
	l.Debug("now visible")
	assert.Equal(t, "● now visible\n", buf.String())
}

func TestLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(logger.EnvLevel, "warn")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)

	l.Info("quiet")
	l.Warn("loud")

	assert.Equal(t, "! loud\n", buf.String())
}

func TestLogger_ErrorPretty(t *testing.T) {
	l, buf := newLogger(t)

	l.Error(zerr.Wrap(errors.New("no space left on device"), "failed to write SPECS"))

	assert.Equal(t, "✗ Error: failed to write SPECS\n\n  Caused by:\n    → no space left on device\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("bogus"))
}
