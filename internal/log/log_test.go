package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsSafeBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("not initialized")
		Warn("still fine", zap.String("key", "value"))
	})
}

func TestSetLoggerRoutesPackageHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Info("play committed", zap.String("category", "fluids"))
	Error("persist failed", zap.Error(assert.AnError))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "play committed", entries[0].Message)
	assert.Equal(t, "fluids", entries[0].ContextMap()["category"])
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.NotPanics(t, func() { Debug("noop") })
}

func TestInitProduction(t *testing.T) {
	require.NoError(t, Init(false))
	t.Cleanup(func() { SetLogger(nil) })
	assert.NotNil(t, Logger())
}
