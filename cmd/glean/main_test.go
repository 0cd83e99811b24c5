package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverHTML = `<!DOCTYPE html>
<html>
<head><title>Served Title</title></head>
<body><div id="story">
	<p>It was a long walk over the hills and through the woods, and by the
	time they arrived at the village they were all very tired.</p>
	<p>There was nothing to do about it but sit down by the fire and wait
	for the evening meal to be ready, which was all they wanted.</p>
</div></body>
</html>`

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("extract from a live server", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(serverHTML))
		}))
		defer srv.Close()

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{
			"extract", srv.URL + "/post",
			"--no-images",
			"--storage-path", t.TempDir(),
		}, &stdout, &stderr)
		require.NoError(t, err)

		var got struct {
			Title       string `json:"title"`
			CleanedText string `json:"cleanedText"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Served Title", got.Title)
		assert.Contains(t, got.CleanedText, "a long walk")
	})

	t.Run("extract from a local HTML file", func(t *testing.T) {
		t.Parallel()

		htmlPath := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(htmlPath, []byte(serverHTML), 0o644))

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{
			"extract", "http://example.com/post",
			"--html", htmlPath,
			"--no-images",
			"--storage-path", t.TempDir(),
		}, &stdout, &stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), `"finalUrl": "http://example.com/post"`)
	})

	t.Run("html flag requires a single URL", func(t *testing.T) {
		t.Parallel()

		htmlPath := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(htmlPath, []byte(serverHTML), 0o644))

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{
			"extract", "http://example.com/a", "http://example.com/b",
			"--html", htmlPath,
		}, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("unreachable URL reports not found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{
			"extract", srv.URL + "/missing",
			"--no-images",
			"--storage-path", t.TempDir(),
		}, &stdout, &stderr)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "no articles extracted"))
	})
}
