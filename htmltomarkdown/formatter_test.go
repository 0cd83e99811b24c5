package htmltomarkdown_test

import (
	"testing"

	"github.com/glean-dev/glean"
	"github.com/glean-dev/glean/goquery"
	"github.com/glean-dev/glean/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("renders headings and emphasis", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body><div id="content">
			<h2>Heading</h2>
			<p>Some <strong>bold</strong> text.</p>
		</div></body></html>`)
		require.NoError(t, err)

		md, err := htmltomarkdown.NewFormatter().Format(doc.Find("#content"))
		require.NoError(t, err)

		assert.Contains(t, md, "## Heading")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("preserves links", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body><div id="content">
			<p>See <a href="https://example.com/docs">the docs</a>.</p>
		</div></body></html>`)
		require.NoError(t, err)

		md, err := htmltomarkdown.NewFormatter().Format(doc.Find("#content"))
		require.NoError(t, err)

		assert.Contains(t, md, "[the docs](https://example.com/docs)")
	})

	t.Run("nil node is an error", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewFormatter().Format(nil)
		require.Error(t, err)
		assert.Equal(t, glean.EINVALID, glean.ErrorCode(err))
	})
}
