package glean

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ContentExtractor is the capability set for stage-independent metadata and
// content-node selection. The pipeline depends only on these signatures;
// the heuristics behind them are implementation details.
//
// The metadata methods return zero values rather than errors: a page with
// no keywords is normal, not a failure.
type ContentExtractor interface {
	// Title returns the article title, preferring structured metadata over
	// the raw <title> element.
	Title(doc *goquery.Document) string

	// MetaDescription returns the content of the description meta tag.
	MetaDescription(doc *goquery.Document) string

	// MetaKeywords returns the content of the keywords meta tag.
	MetaKeywords(doc *goquery.Document) string

	// CanonicalLink returns the page's canonical URL, resolved against
	// finalURL when the document declares a relative one. Falls back to
	// finalURL itself.
	CanonicalLink(doc *goquery.Document, finalURL string) string

	// Domain returns the host of the final URL.
	Domain(finalURL string) string

	// Tags returns the article's tags as a deduplicated set.
	Tags(doc *goquery.Document) []string

	// BestNode locates the subtree most likely to hold the article's main
	// text. Returns nil when no subtree qualifies.
	BestNode(doc *goquery.Document) *goquery.Selection

	// Videos discovers embedded videos inside the content subtree.
	Videos(node *goquery.Selection) []Video

	// PostCleanup prunes residual boilerplate from the chosen content node
	// after scoring, returning the node to render.
	PostCleanup(node *goquery.Selection) *goquery.Selection
}

// PublishDateExtractor extracts the publication timestamp of a page.
// Returns nil when no date can be determined.
type PublishDateExtractor interface {
	Extract(doc *goquery.Document) *time.Time
}

// AdditionalDataExtractor extracts site-specific key/value data from a page.
type AdditionalDataExtractor interface {
	Extract(doc *goquery.Document) map[string]string
}
