package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	prev := L()
	defer ReplaceGlobal(prev)
	defer SetLevel(zapcore.WarnLevel)

	assert.NoError(t, Init(FormatJSON, "debug"))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, Init(FormatConsole, "error"))
	assert.False(t, L().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, Init(FormatConsole, "loud"))
	assert.Error(t, Init("xml", "info"))
}

func TestPackageFunctions(t *testing.T) {
	prev := L()
	defer ReplaceGlobal(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	ReplaceGlobal(zap.New(core))

	Debug("d")
	Info("i")
	Warn("w", zap.String("k", "v"))
	Error("e")

	assert.Equal(t, 4, logs.Len())
	assert.Equal(t, "v", logs.FilterMessage("w").All()[0].ContextMap()["k"])
}
