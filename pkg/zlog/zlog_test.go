package zlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRoutesPackageLevelCalls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Init(Options{}) })

	Info("toggle", zap.String("outcome", "added"))
	Warn("publish failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "toggle", entries[0].Message)
	assert.Equal(t, "added", entries[0].ContextMap()["outcome"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestInitWithFileAndBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(Options{LogPath: path, Level: "not-a-level", MaxSizeMB: 1})
	t.Cleanup(func() { Init(Options{}) })

	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
	Info("written to file")
	_ = Sync()
	assert.FileExists(t, path)
}
