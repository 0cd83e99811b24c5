package http_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/glean-dev/glean"
	"github.com/glean-dev/glean/goquery"
	gleanhttp "github.com/glean-dev/glean/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes returns an encoded PNG of the given dimensions.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// newArticle builds an article with parsed working and snapshot trees.
func newArticle(t *testing.T, pageURL, html string) *glean.Article {
	t.Helper()

	link, err := glean.NormalizeURL(pageURL)
	require.NoError(t, err)

	p := goquery.NewParser()
	doc, err := p.Parse(html)
	require.NoError(t, err)
	raw, err := p.Parse(html)
	require.NoError(t, err)

	return &glean.Article{
		FinalURL: link.URL,
		Linkhash: link.Hash,
		Doc:      doc,
		RawDoc:   raw,
		TopNode:  doc.Find("#story"),
	}
}

func TestImageExtractor_BestImage(t *testing.T) {
	t.Parallel()

	t.Run("prefers the page-declared meta image", func(t *testing.T) {
		t.Parallel()

		img := pngBytes(t, 300, 200)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(img)
		}))
		defer srv.Close()

		a := newArticle(t, srv.URL+"/post",
			`<html><head><meta property="og:image" content="`+srv.URL+`/lead.png"></head>
			<body><div id="story"><p>text</p></div></body></html>`)

		dir := t.TempDir()
		got, err := gleanhttp.NewImageExtractor(dir).BestImage(context.Background(), a)
		require.NoError(t, err)

		assert.Equal(t, srv.URL+"/lead.png", got.Src)
		assert.Equal(t, glean.ImageFromMeta, got.Extraction)
		assert.Equal(t, 300, got.Width)
		assert.Equal(t, 200, got.Height)
	})

	t.Run("scores content images when no meta image exists", func(t *testing.T) {
		t.Parallel()

		small := pngBytes(t, 60, 60)
		large := pngBytes(t, 600, 400)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "large") {
				_, _ = w.Write(large)
				return
			}
			_, _ = w.Write(small)
		}))
		defer srv.Close()

		a := newArticle(t, srv.URL+"/post",
			`<html><body><div id="story">
				<img src="`+srv.URL+`/small.png">
				<img src="`+srv.URL+`/large.png">
				<p>text</p>
			</div></body></html>`)

		got, err := gleanhttp.NewImageExtractor(t.TempDir()).BestImage(context.Background(), a)
		require.NoError(t, err)

		assert.Equal(t, srv.URL+"/large.png", got.Src)
		assert.Equal(t, glean.ImageFromScoring, got.Extraction)
	})

	t.Run("caches downloads with the linkhash prefix", func(t *testing.T) {
		t.Parallel()

		img := pngBytes(t, 300, 200)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(img)
		}))
		defer srv.Close()

		a := newArticle(t, srv.URL+"/post",
			`<html><head><meta property="og:image" content="`+srv.URL+`/lead.png"></head>
			<body><div id="story"><p>text</p></div></body></html>`)

		dir := t.TempDir()
		_, err := gleanhttp.NewImageExtractor(dir).BestImage(context.Background(), a)
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, entry := range entries {
			assert.True(t, strings.HasPrefix(entry.Name(), a.Linkhash+"_"))
		}
	})

	t.Run("rejects tiny images", func(t *testing.T) {
		t.Parallel()

		tiny := pngBytes(t, 1, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(tiny)
		}))
		defer srv.Close()

		a := newArticle(t, srv.URL+"/post",
			`<html><body><div id="story"><img src="`+srv.URL+`/tracker.png"><p>text</p></div></body></html>`)

		_, err := gleanhttp.NewImageExtractor(t.TempDir()).BestImage(context.Background(), a)
		require.Error(t, err)
		assert.Equal(t, glean.ENOTFOUND, glean.ErrorCode(err))
	})

	t.Run("undecodable meta image falls through to scoring", func(t *testing.T) {
		t.Parallel()

		img := pngBytes(t, 300, 200)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "broken") {
				_, _ = w.Write([]byte("not an image"))
				return
			}
			_, _ = w.Write(img)
		}))
		defer srv.Close()

		a := newArticle(t, srv.URL+"/post",
			`<html><head><meta property="og:image" content="`+srv.URL+`/broken.png"></head>
			<body><div id="story"><img src="`+srv.URL+`/real.png"><p>text</p></div></body></html>`)

		got, err := gleanhttp.NewImageExtractor(t.TempDir()).BestImage(context.Background(), a)
		require.NoError(t, err)
		assert.Equal(t, glean.ImageFromScoring, got.Extraction)
		assert.Equal(t, srv.URL+"/real.png", got.Src)
	})

	t.Run("missing snapshot is a contract violation", func(t *testing.T) {
		t.Parallel()

		_, err := gleanhttp.NewImageExtractor(t.TempDir()).
			BestImage(context.Background(), &glean.Article{})
		require.Error(t, err)
		assert.Equal(t, glean.EINVALID, glean.ErrorCode(err))
	})
}
