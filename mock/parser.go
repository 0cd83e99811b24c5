package mock

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

var _ glean.Parser = (*Parser)(nil)

// Parser is a mock implementation of glean.Parser.
type Parser struct {
	ParseFn func(html string) (*goquery.Document, error)
}

func (p *Parser) Parse(html string) (*goquery.Document, error) {
	return p.ParseFn(html)
}
