// Package goquery provides the default DOM-based implementations of glean's
// extraction collaborators: parsing, boilerplate cleaning, metadata and
// content-node extraction, video discovery, and plain-text rendering.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// Ensure Parser implements glean.Parser at compile time.
var _ glean.Parser = (*Parser)(nil)

// Parser parses raw HTML into a goquery document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes the HTML and returns an independent document tree.
func (p *Parser) Parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, glean.Errorf(glean.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, glean.Errorf(glean.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
