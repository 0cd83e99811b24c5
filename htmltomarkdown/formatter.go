// Package htmltomarkdown renders a content subtree as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// Ensure Formatter implements glean.OutputFormatter at compile time.
var _ glean.OutputFormatter = (*Formatter)(nil)

// Formatter wraps html-to-markdown to render a content node as Markdown,
// preserving headings, emphasis, links and tables that the plain-text
// formatter flattens.
type Formatter struct {
	conv *converter.Converter
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Formatter{conv: conv}
}

// Format renders the node as Markdown.
func (f *Formatter) Format(node *goquery.Selection) (string, error) {
	if node == nil || node.Length() == 0 {
		return "", glean.Errorf(glean.EINVALID, "nil content node")
	}

	html, err := goquery.OuterHtml(node)
	if err != nil {
		return "", err
	}

	markdown, err := f.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}
