package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// Ensure Formatter implements glean.OutputFormatter at compile time.
var _ glean.OutputFormatter = (*Formatter)(nil)

// Formatter renders a content subtree as plain text: one block per
// text-bearing element, blocks separated by blank lines.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// textBlockSelector matches the elements rendered as standalone blocks.
const textBlockSelector = "p, pre, blockquote, li, h1, h2, h3, h4, h5, h6"

var whitespaceRun = regexp.MustCompile(`[ \t\r\f]+`)

// Format renders the node as plain text.
func (f *Formatter) Format(node *goquery.Selection) (string, error) {
	if node == nil {
		return "", glean.Errorf(glean.EINVALID, "nil content node")
	}

	var blocks []string
	appendBlock := func(text string) {
		text = collapseWhitespace(text)
		if text != "" {
			blocks = append(blocks, text)
		}
	}

	matched := node.Find(textBlockSelector)
	if matched.Length() == 0 {
		// The node itself may be a leaf block (e.g. a single <p>).
		appendBlock(node.Text())
	} else {
		matched.Each(func(_ int, sel *goquery.Selection) {
			// Emit text at the innermost block that holds it, so nested
			// structures (li inside li, p inside blockquote) render once.
			if sel.Find(textBlockSelector).Length() > 0 {
				return
			}
			appendBlock(sel.Text())
		})
	}

	return strings.Join(blocks, "\n\n"), nil
}

// collapseWhitespace trims the text and collapses interior whitespace runs
// to single spaces, preserving nothing of the source indentation.
func collapseWhitespace(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
