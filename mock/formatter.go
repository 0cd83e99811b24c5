package mock

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

var _ glean.OutputFormatter = (*OutputFormatter)(nil)

// OutputFormatter is a mock implementation of glean.OutputFormatter.
type OutputFormatter struct {
	FormatFn func(node *goquery.Selection) (string, error)
}

func (f *OutputFormatter) Format(node *goquery.Selection) (string, error) {
	return f.FormatFn(node)
}
