package mock

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

var _ glean.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of glean.ContentExtractor.
// Unset metadata funcs return zero values so tests only stub what they
// assert on.
type ContentExtractor struct {
	TitleFn           func(doc *goquery.Document) string
	MetaDescriptionFn func(doc *goquery.Document) string
	MetaKeywordsFn    func(doc *goquery.Document) string
	CanonicalLinkFn   func(doc *goquery.Document, finalURL string) string
	DomainFn          func(finalURL string) string
	TagsFn            func(doc *goquery.Document) []string
	BestNodeFn        func(doc *goquery.Document) *goquery.Selection
	VideosFn          func(node *goquery.Selection) []glean.Video
	PostCleanupFn     func(node *goquery.Selection) *goquery.Selection
}

func (e *ContentExtractor) Title(doc *goquery.Document) string {
	if e.TitleFn == nil {
		return ""
	}
	return e.TitleFn(doc)
}

func (e *ContentExtractor) MetaDescription(doc *goquery.Document) string {
	if e.MetaDescriptionFn == nil {
		return ""
	}
	return e.MetaDescriptionFn(doc)
}

func (e *ContentExtractor) MetaKeywords(doc *goquery.Document) string {
	if e.MetaKeywordsFn == nil {
		return ""
	}
	return e.MetaKeywordsFn(doc)
}

func (e *ContentExtractor) CanonicalLink(doc *goquery.Document, finalURL string) string {
	if e.CanonicalLinkFn == nil {
		return finalURL
	}
	return e.CanonicalLinkFn(doc, finalURL)
}

func (e *ContentExtractor) Domain(finalURL string) string {
	if e.DomainFn == nil {
		return ""
	}
	return e.DomainFn(finalURL)
}

func (e *ContentExtractor) Tags(doc *goquery.Document) []string {
	if e.TagsFn == nil {
		return nil
	}
	return e.TagsFn(doc)
}

func (e *ContentExtractor) BestNode(doc *goquery.Document) *goquery.Selection {
	if e.BestNodeFn == nil {
		return nil
	}
	return e.BestNodeFn(doc)
}

func (e *ContentExtractor) Videos(node *goquery.Selection) []glean.Video {
	if e.VideosFn == nil {
		return nil
	}
	return e.VideosFn(node)
}

func (e *ContentExtractor) PostCleanup(node *goquery.Selection) *goquery.Selection {
	if e.PostCleanupFn == nil {
		return node
	}
	return e.PostCleanupFn(node)
}

var _ glean.PublishDateExtractor = (*PublishDateExtractor)(nil)

// PublishDateExtractor is a mock implementation of glean.PublishDateExtractor.
type PublishDateExtractor struct {
	ExtractFn func(doc *goquery.Document) *time.Time
}

func (e *PublishDateExtractor) Extract(doc *goquery.Document) *time.Time {
	return e.ExtractFn(doc)
}

var _ glean.AdditionalDataExtractor = (*AdditionalDataExtractor)(nil)

// AdditionalDataExtractor is a mock implementation of glean.AdditionalDataExtractor.
type AdditionalDataExtractor struct {
	ExtractFn func(doc *goquery.Document) map[string]string
}

func (e *AdditionalDataExtractor) Extract(doc *goquery.Document) map[string]string {
	return e.ExtractFn(doc)
}
