package glean

import "github.com/PuerkitoBio/goquery"

// Parser parses raw HTML into a DOM.
type Parser interface {
	// Parse tokenizes the HTML and returns the document tree.
	// Each call returns an independent tree; the pipeline parses the same
	// HTML twice to obtain a working copy and an immutable snapshot.
	Parse(html string) (*goquery.Document, error)
}
