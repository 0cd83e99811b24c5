package glean

import "github.com/PuerkitoBio/goquery"

// OutputFormatter renders a cleaned content subtree to text.
type OutputFormatter interface {
	// Format renders the node. The output dialect (plain text, Markdown)
	// is implementation-defined.
	Format(node *goquery.Selection) (string, error)
}
