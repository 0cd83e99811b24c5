package mock

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

var _ glean.DocumentCleaner = (*DocumentCleaner)(nil)

// DocumentCleaner is a mock implementation of glean.DocumentCleaner.
// An unset CleanFn passes the document through unchanged.
type DocumentCleaner struct {
	CleanFn func(doc *goquery.Document) *goquery.Document
}

func (c *DocumentCleaner) Clean(doc *goquery.Document) *goquery.Document {
	if c.CleanFn == nil {
		return doc
	}
	return c.CleanFn(doc)
}
