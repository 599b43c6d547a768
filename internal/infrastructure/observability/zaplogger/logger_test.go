package zaplogger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_ForwardsFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(observability.F("service", "cafe"))

	l.Debug("d")
	l.Info("i", observability.F("amount", int64(5000)))
	l.Warn("w")
	l.Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "i", entries[1].Message)

	ctx := entries[1].ContextMap()
	assert.Equal(t, "cafe", ctx["service"])
	assert.EqualValues(t, 5000, ctx["amount"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNew_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cafe.log")

	l, err := New(Options{Level: "info", LogFile: path})
	require.NoError(t, err)
	l.Info("boot")
	_ = l.Sync()

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestWrap_NilFallsBackToNop(t *testing.T) {
	l := Wrap(nil)
	assert.NotPanics(t, func() { l.Info("ignored") })
}
