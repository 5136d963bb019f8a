package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLevel verifies string-to-level mapping and unknown input handling.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		" INFO": zapcore.InfoLevel,
	}
	for s, want := range cases {
		got, ok := ParseLevel(s)
		require.True(t, ok, s)
		require.Equal(t, want, got)
	}

	_, ok := ParseLevel("loud")
	require.False(t, ok)
}

// TestContextHelpers verifies that loggers travel through the context and
// that names and fields attach to them.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "build")
	ctx = WithKV(ctx, "stage", "compile")

	Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "build", entries[0].LoggerName)
	require.Equal(t, "compile", entries[0].ContextMap()["stage"])
}

// TestFromContextFallsBack ensures a bare context yields the global logger.
func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
}
