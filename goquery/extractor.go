package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// Ensure Extractor implements glean.ContentExtractor at compile time.
var _ glean.ContentExtractor = (*Extractor)(nil)

// Extractor is the default content extractor. Metadata comes from standard
// meta tags with OpenGraph preferred; the content node is chosen by
// stopword-density clustering over text-bearing elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// titleSeparators are the glyphs sites use to join the article title with
// the site name inside <title>.
var titleSeparators = []string{" | ", " - ", " » ", " :: ", " — "}

// Title returns the article title, preferring og:title over <title>.
// When <title> carries a site-name suffix, the longest segment wins.
func (e *Extractor) Title(doc *goquery.Document) string {
	if t := metaContent(doc, `meta[property="og:title"]`); t != "" {
		return t
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return ""
	}
	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}
		longest := ""
		for _, part := range strings.Split(title, sep) {
			if len(part) > len(longest) {
				longest = part
			}
		}
		title = longest
		break
	}
	return strings.TrimSpace(title)
}

// MetaDescription returns the content of the description meta tag.
func (e *Extractor) MetaDescription(doc *goquery.Document) string {
	if d := metaContent(doc, `meta[name="description"]`); d != "" {
		return d
	}
	return metaContent(doc, `meta[property="og:description"]`)
}

// MetaKeywords returns the content of the keywords meta tag.
func (e *Extractor) MetaKeywords(doc *goquery.Document) string {
	return metaContent(doc, `meta[name="keywords"]`)
}

// CanonicalLink returns the canonical URL declared by the page, resolved
// against finalURL. Falls back to og:url, then to finalURL itself.
func (e *Extractor) CanonicalLink(doc *goquery.Document, finalURL string) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		if resolved := resolveReference(finalURL, href); resolved != "" {
			return resolved
		}
	}
	if u := metaContent(doc, `meta[property="og:url"]`); u != "" {
		if resolved := resolveReference(finalURL, u); resolved != "" {
			return resolved
		}
	}
	return finalURL
}

// Domain returns the host of the final URL.
func (e *Extractor) Domain(finalURL string) string {
	u, err := url.Parse(finalURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Tags returns the page's tags as a sorted, deduplicated set. Sources are
// rel=tag anchors, /tag/ and /tags/ link paths, and article:tag meta tags.
func (e *Extractor) Tags(doc *goquery.Document) []string {
	seen := make(map[string]struct{})

	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		seen[strings.ToLower(tag)] = struct{}{}
	}

	doc.Find(`a[rel="tag"], a[href*="/tag/"], a[href*="/tags/"]`).Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, sel *goquery.Selection) {
		if content, ok := sel.Attr("content"); ok {
			add(content)
		}
	})

	if len(seen) == 0 {
		return nil
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// resolveReference resolves href against base, returning "" when either
// side is unparseable.
func resolveReference(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}
