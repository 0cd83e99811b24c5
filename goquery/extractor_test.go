package goquery_test

import (
	"testing"

	"github.com/glean-dev/glean/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataHTML = `<!DOCTYPE html>
<html>
<head>
	<title>How Go Schedules Goroutines | Example Tech Blog</title>
	<meta name="description" content="A walkthrough of the Go scheduler.">
	<meta name="keywords" content="go,scheduler,runtime">
	<meta property="article:tag" content="Concurrency">
	<link rel="canonical" href="/posts/go-scheduler">
</head>
<body>
	<a rel="tag" href="/tag/golang">Golang</a>
	<a href="/tags/runtime">Runtime</a>
</body>
</html>`

func TestExtractor_Metadata(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse(metadataHTML)
	require.NoError(t, err)
	e := goquery.NewExtractor()

	t.Run("title drops the site-name segment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "How Go Schedules Goroutines", e.Title(doc))
	})

	t.Run("meta description", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "A walkthrough of the Go scheduler.", e.MetaDescription(doc))
	})

	t.Run("meta keywords", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "go,scheduler,runtime", e.MetaKeywords(doc))
	})

	t.Run("canonical link resolves relative href", func(t *testing.T) {
		t.Parallel()
		got := e.CanonicalLink(doc, "https://blog.example.com/posts/go-scheduler?ref=rss")
		assert.Equal(t, "https://blog.example.com/posts/go-scheduler", got)
	})

	t.Run("domain", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "blog.example.com", e.Domain("https://blog.example.com/posts/go-scheduler"))
	})

	t.Run("tags are deduplicated and sorted", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"concurrency", "golang", "runtime"}, e.Tags(doc))
	})
}

func TestExtractor_Title(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><head>
			<meta property="og:title" content="The Real Title">
			<title>Something Else | Site</title>
		</head></html>`)
		require.NoError(t, err)

		assert.Equal(t, "The Real Title", goquery.NewExtractor().Title(doc))
	})

	t.Run("empty document yields empty title", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body><p>no head</p></body></html>`)
		require.NoError(t, err)

		assert.Empty(t, goquery.NewExtractor().Title(doc))
	})
}

func TestExtractor_CanonicalLink_Fallbacks(t *testing.T) {
	t.Parallel()

	t.Run("falls back to og:url", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><head>
			<meta property="og:url" content="https://example.com/canonical">
		</head></html>`)
		require.NoError(t, err)

		got := goquery.NewExtractor().CanonicalLink(doc, "https://example.com/other")
		assert.Equal(t, "https://example.com/canonical", got)
	})

	t.Run("falls back to final URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body></body></html>`)
		require.NoError(t, err)

		got := goquery.NewExtractor().CanonicalLink(doc, "https://example.com/self")
		assert.Equal(t, "https://example.com/self", got)
	})
}
