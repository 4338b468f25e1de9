package slogx_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/lanternhq/authd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestContextLogger(t *testing.T) {
	t.Run("round trips a stored logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := slogx.WithContext(context.Background(), logger)

		require.Same(t, logger, slogx.FromContext(ctx))
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		require.Same(t, slog.Default(), slogx.FromContext(context.Background()))
	})
}
