package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("rejects an unknown level", func(t *testing.T) {
		err := Init("verbose")
		assert.Error(t, err)
	})

	t.Run("initializes with a valid level", func(t *testing.T) {
		err := Init("error")
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("is a no-op after the first successful call", func(t *testing.T) {
		require.NoError(t, Init("error"))
		first := logger

		require.NoError(t, Init("debug"))
		assert.Same(t, first, logger)
	})
}

func TestLoggingHelpers(t *testing.T) {
	require.NoError(t, Init("error"))

	ctx := t.Context()

	// The helpers write to stdout; the assertion here is simply that none of
	// them panic once Init has run.
	assert.NotPanics(t, func() {
		Debug(ctx, "debug message", "key", "value")
		Info(ctx, "info message", "key", "value")
		Warn(ctx, "warn message", "key", "value")
		Error(ctx, "error message", "key", "value")
	})
}
