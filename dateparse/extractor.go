// Package dateparse extracts publication timestamps from page metadata
// using the araddon/dateparse format-guessing parser.
package dateparse

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/glean-dev/glean"
)

// Ensure Extractor implements glean.PublishDateExtractor at compile time.
var _ glean.PublishDateExtractor = (*Extractor)(nil)

// Extractor reads the publish date from the usual places, most structured
// first: article:published_time, then dated meta tags, then the first
// <time datetime> element.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// dateSources are probed in order; the first parseable value wins.
var dateSources = []struct {
	selector string
	attr     string
}{
	{`meta[property="article:published_time"]`, "content"},
	{`meta[itemprop="datePublished"]`, "content"},
	{`meta[name="pubdate"]`, "content"},
	{`meta[name="publishdate"]`, "content"},
	{`meta[name="date"]`, "content"},
	{`meta[name="dc.date"]`, "content"},
	{`time[datetime]`, "datetime"},
}

// Extract returns the publication time, or nil when no candidate parses.
func (e *Extractor) Extract(doc *goquery.Document) *time.Time {
	for _, s := range dateSources {
		value, ok := doc.Find(s.selector).First().Attr(s.attr)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if t, err := dateparse.ParseAny(value); err == nil {
			return &t
		}
	}
	return nil
}
