package logging

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shortlink/internal/conf"
)

func TestNew_InvalidLevel_ReturnsError(t *testing.T) {
	_, err := New(&conf.Log{Level: "loud", Format: "json"})

	assert.Error(t, err)
}

func TestNew_ConsoleFormat_BuildsLogger(t *testing.T) {
	logger, err := New(&conf.Log{Level: "debug", Format: "console"})

	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestProvideLogger_ReturnsCleanup(t *testing.T) {
	logger, cleanup, err := ProvideLogger(&conf.Log{Level: "warn", Format: "json"})

	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.NotPanics(t, cleanup)
}

func TestKratosLogger_Log_WritesMessageAndFields(t *testing.T) {
	// Setup
	core, logs := observer.New(zapcore.DebugLevel)
	sut := NewKratosLogger(zap.New(core))

	// Act
	err := sut.Log(log.LevelWarn, "msg", "server started", "addr", ":8080")

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "server started", entry.Message)
	assert.Equal(t, ":8080", entry.ContextMap()["addr"])
}

func TestKratosLogger_Log_UnpairedKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sut := NewKratosLogger(zap.New(core))

	err := sut.Log(log.LevelInfo, "lonely")

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "KEYVALS UNPAIRED", logs.All()[0].ContextMap()["lonely"])
}

func TestKratosLogger_Log_FatalDoesNotExit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sut := NewKratosLogger(zap.New(core))

	err := sut.Log(log.LevelFatal, "msg", "boom")

	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestWatermillLogger_With_MergesFields(t *testing.T) {
	// Setup
	core, logs := observer.New(zapcore.DebugLevel)
	sut := NewWatermillLogger(zap.New(core)).With(watermill.LogFields{"topic": "clicks"})

	// Act
	sut.Error("handler failed", errors.New("boom"), watermill.LogFields{"handler": "record_click"})

	// Assert
	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "clicks", ctx["topic"])
	assert.Equal(t, "record_click", ctx["handler"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "watermill", logs.All()[0].LoggerName)
}
