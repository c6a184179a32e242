package logger

import (
	"context"
	"testing"

	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/util"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{logger: zap.New(core)}, logs
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
	}{
		{input: "debug", expected: DebugLevel},
		{input: " WARN ", expected: WarnLevel},
		{input: "error", expected: ErrorLevel},
		{input: "info", expected: InfoLevel},
		{input: "verbose", expected: InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLogger_InfoContextAppendsRunID(t *testing.T) {
	l, logs := newObserved()
	ctx := util.WithRunID(context.Background(), "run-42")

	l.InfoContext(ctx, "stage done", NewField("bars", 3))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "stage done", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-42", fields["run_id"])
	assert.EqualValues(t, 3, fields["bars"])
}

func TestLogger_InfoContextWithoutRunID(t *testing.T) {
	l, logs := newObserved()

	l.InfoContext(context.Background(), "no run")

	entries := logs.All()
	assert.Len(t, entries, 1)
	_, ok := entries[0].ContextMap()["run_id"]
	assert.False(t, ok)
}

func TestLogger_ErrorUsesErrorMessage(t *testing.T) {
	l, logs := newObserved()

	l.Error(errors.NewTracer("boom"), NewField("action", "test"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].Message)
}

func TestLogger_WithFields(t *testing.T) {
	l, logs := newObserved()

	child := l.WithFields(NewField("component", "swing"))
	child.Debug("skip")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "swing", entries[0].ContextMap()["component"])
}

func TestNewNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("discarded")
	assert.NotNil(t, l.GetZap())
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(
		WithLoggingLevel(DebugLevel),
		WithDevelopment(true),
		WithInitialFields(NewField("app", "zigzag")),
	)
	assert.NoError(t, err)
	assert.True(t, l.GetZap().Core().Enabled(zapcore.DebugLevel))
}
