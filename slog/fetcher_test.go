package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/glean-dev/glean/mock"
	gleanslog "github.com/glean-dev/glean/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		f := gleanslog.NewFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}, logger)

		html, err := f.Fetch(context.Background(), "http://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "url=http://example.com")
		assert.Contains(t, buf.String(), "bytes=13")
	})

	t.Run("logs failures at warn and propagates the error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		f := gleanslog.NewFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("dns failure")
			},
		}, logger)

		_, err := f.Fetch(context.Background(), "http://example.com")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "dns failure")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := gleanslog.NewFetcher(&mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, stdslog.New(stdslog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
