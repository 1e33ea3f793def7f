//go:build unit

package zap

import (
	"context"
	"errors"
	"testing"
	"time"

	logpkg "github.com/LerianStudio/lib-chek/chek/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return Wrap(zap.New(core)), observed
}

func TestLoggerNilReceiverFallsBackToNop(t *testing.T) {
	var nilLogger *Logger

	assert.NotPanics(t, func() {
		nilLogger.Log(context.Background(), logpkg.LevelInfo, "message")
	})
}

func TestLoggerNilUnderlyingFallsBackToNop(t *testing.T) {
	logger := &Logger{}

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), logpkg.LevelError, "message")
	})
}

func TestLogMapsLevels(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.DebugLevel)
	ctx := context.Background()

	logger.Log(ctx, logpkg.LevelDebug, "debug message")
	logger.Log(ctx, logpkg.LevelInfo, "info message", logpkg.String("construct", "equal"))
	logger.Log(ctx, logpkg.LevelWarn, "warn message")
	logger.Log(ctx, logpkg.LevelError, "error message", logpkg.Err(errors.New("boom")))

	entries := observed.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "equal", entries[1].ContextMap()["construct"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestLogAppendsTraceCorrelation(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.InfoLevel)

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.Log(ctx, logpkg.LevelError, "assertion failed")

	entries := observed.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, traceID.String(), fields["trace_id"])
	assert.Equal(t, spanID.String(), fields["span_id"])
}

func TestWithAndWithGroup(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.InfoLevel)

	child := logger.With(logpkg.String("component", "ledger"))
	child.Log(context.Background(), logpkg.LevelInfo, "with fields")

	grouped := logger.WithGroup("assertion")
	grouped.Log(context.Background(), logpkg.LevelInfo, "grouped", logpkg.String("construct", "lt"))

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ledger", entries[0].ContextMap()["component"])

	group, ok := entries[1].ContextMap()["assertion"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "lt", group["construct"])
}

func TestEnabled(t *testing.T) {
	logger, _ := newObservedLogger(zapcore.WarnLevel)

	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestSyncHonorsCanceledContext(t *testing.T) {
	logger, _ := newObservedLogger(zapcore.InfoLevel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, logger.Sync(ctx), context.Canceled)

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second)
	defer cancelTimeout()

	assert.NoError(t, logger.Sync(ctx))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Environment: EnvironmentLocal})
	require.ErrorIs(t, err, ErrMissingLibraryName)

	_, err = New(Config{Environment: "moon", OTelLibraryName: "lib-chek"})
	require.Error(t, err)

	_, err = New(Config{Environment: EnvironmentProduction, OTelLibraryName: "lib-chek", Level: "loud"})
	require.Error(t, err)
}

func TestNewResolvesLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"production default", Config{Environment: EnvironmentProduction}, zapcore.InfoLevel},
		{"staging default", Config{Environment: EnvironmentStaging}, zapcore.InfoLevel},
		{"local default", Config{Environment: EnvironmentLocal}, zapcore.DebugLevel},
		{"explicit override", Config{Environment: EnvironmentDevelopment, Level: "warn"}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.OTelLibraryName = "lib-chek"

			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.Level().Level())
		})
	}
}

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean string unchanged", "assertion failed", "assertion failed"},
		{"newline escaped", "line1\nline2", `line1\nline2`},
		{"carriage return escaped", "line1\rline2", `line1\rline2`},
		{"tab escaped", "col1\tcol2", `col1\tcol2`},
		{"literal backslash-n untouched", `already\nescaped`, `already\nescaped`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, sanitizeString(tc.input))
		})
	}
}

func TestLogSanitizesMessageButNotFields(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.InfoLevel)

	diagnostic := "assertion failed: `chek::eq!(left, right)`\n  left: `1` = `a`"
	logger.Log(context.Background(), logpkg.LevelError, "forged\nentry", logpkg.String("diagnostic", diagnostic))

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, `forged\nentry`, entries[0].Message)
	assert.Equal(t, diagnostic, entries[0].ContextMap()["diagnostic"])
}
