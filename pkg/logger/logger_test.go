package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	t.Run("empty context falls back to default", func(t *testing.T) {
		assert.Same(t, Get(), FromCtx(context.Background()))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		customLogger := Get().With("custom", "value")
		ctx := WithCtx(context.Background(), customLogger)

		assert.Same(t, customLogger, FromCtx(ctx))
	})

	t.Run("extra fields derive a new logger", func(t *testing.T) {
		ctx := WithCtx(context.Background(), Get())

		derived := FromCtx(ctx, "show", 42)
		require.NotNil(t, derived)
		assert.NotSame(t, Get(), derived)
	})
}

func TestWithCtx(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)
	assert.Same(t, logger, FromCtx(newCtx))
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Equal(t, newCtx, WithCtx(newCtx, logger))
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sceneid.log")

	f := rotatingFile(path)
	require.NotNil(t, f)
	assert.Equal(t, path, f.Filename)
	assert.Equal(t, defaultMaxSizeMB, f.MaxSize)
	assert.True(t, f.Compress)
}
