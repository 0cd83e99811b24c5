package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// Ensure Cleaner implements glean.DocumentCleaner at compile time.
var _ glean.DocumentCleaner = (*Cleaner)(nil)

// Cleaner strips boilerplate from a document before content scoring.
// It removes non-content elements outright and prunes blocks whose id or
// class names mark them as chrome (navigation, comments, sharing widgets,
// ads).
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// removeSelectors match elements that never contribute article text.
const removeSelectors = "script, style, noscript, link, iframe[src*='facebook'], " +
	"nav, header, footer, aside, form, button, select, input"

// badIdents matches id/class fragments that mark boilerplate containers.
// Word-ish boundaries keep "sidebar" from matching "considerable".
var badIdents = regexp.MustCompile(`(?i)(^|[-_ ])(sidebar|comments?|share|social|fb-root|` +
	`advert|sponsor|promo|popup|breadcrumb|pagination|related|newsletter|cookie|banner|` +
	`menu|nav|footer|masthead|subscribe)([-_ ]|$)`)

// Clean mutates doc in place, removing boilerplate nodes, and returns it.
// The pipeline only ever passes the working tree here; the pristine
// snapshot is parsed separately and never cleaned.
func (c *Cleaner) Clean(doc *goquery.Document) *goquery.Document {
	doc.Find(removeSelectors).Remove()

	doc.Find("div, section, ul, span, table").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		class, _ := sel.Attr("class")
		if badIdents.MatchString(id) || badIdents.MatchString(class) {
			sel.Remove()
		}
	})

	return doc
}
