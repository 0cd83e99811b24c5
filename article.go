package glean

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Candidate represents a single extraction request. RawHTML, when non-empty,
// is used as-is and the Fetcher is never invoked for the candidate.
type Candidate struct {
	URL     string `json:"url"`
	RawHTML string `json:"rawHtml,omitempty"`
}

// Validate returns an error if the candidate is malformed.
// A malformed candidate is a caller bug, not an expected crawl failure.
func (c Candidate) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "candidate URL required")
	}
	return nil
}

// Article is the structured extraction result for one crawled page.
//
// An Article is exclusively owned by the pipeline run that builds it: it is
// fully populated within a single synchronous run and no field is updated
// after the run returns.
type Article struct {
	// FinalURL is the normalized form of the candidate URL.
	// Linkhash is derived from it and namespaces temp files for cleanup.
	FinalURL string `json:"finalUrl"`
	Linkhash string `json:"linkhash"`

	RawHTML string `json:"-"`

	// Doc is the working tree, progressively pruned by cleaning stages.
	// RawDoc is an independent parse of the same HTML taken before any
	// cleaning; image scoring runs against it and it is never mutated.
	Doc    *goquery.Document `json:"-"`
	RawDoc *goquery.Document `json:"-"`

	Title           string            `json:"title"`
	PublishDate     *time.Time        `json:"publishDate,omitempty"`
	AdditionalData  map[string]string `json:"additionalData,omitempty"`
	MetaDescription string            `json:"metaDescription"`
	MetaKeywords    string            `json:"metaKeywords"`
	CanonicalLink   string            `json:"canonicalLink"`
	Domain          string            `json:"domain"`
	Tags            []string          `json:"tags,omitempty"`

	// TopNode is the subtree judged most likely to hold the article text.
	// When nil, TopImage, Movies and CleanedText stay empty.
	TopNode *goquery.Selection `json:"-"`

	TopImage    *Image  `json:"topImage,omitempty"`
	Movies      []Video `json:"movies,omitempty"`
	CleanedText string  `json:"cleanedText"`
}

// Image extraction methods.
const (
	ImageFromMeta    = "meta"
	ImageFromScoring = "scoring"
)

// Image is the representative image chosen for an article.
type Image struct {
	Src        string  `json:"src"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Bytes      int64   `json:"bytes,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// Extraction records how the image was found: ImageFromMeta or
	// ImageFromScoring.
	Extraction string `json:"extraction,omitempty"`
}

// Video is an embedded video discovered inside the article's content subtree.
type Video struct {
	Provider string `json:"provider,omitempty"`
	Src      string `json:"src"`
	EmbedTag string `json:"embedTag,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
