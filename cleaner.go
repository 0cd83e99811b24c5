package glean

import "github.com/PuerkitoBio/goquery"

// DocumentCleaner strips boilerplate nodes from a DOM before content
// scoring: scripts, navigation, comment widgets, ads, and similar chrome.
// Clean mutates the given document in place and returns it.
type DocumentCleaner interface {
	Clean(doc *goquery.Document) *goquery.Document
}
