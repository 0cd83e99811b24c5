package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Clustering thresholds. A paragraph participates in scoring only when it
// carries minParagraphStopwords stopwords and is not mostly links; a boost
// keeps scores biased toward the top of the document where article bodies
// start.
const (
	minParagraphStopwords = 2
	maxLinkDensity        = 0.5
	boostedParagraphs     = 5
	paragraphBoost        = 20
)

// BestNode locates the subtree most likely to hold the article's main text.
//
// Every <p>, <pre> and <td> with enough stopword density votes for its
// parent and, at half weight, its grandparent; the highest-scoring ancestor
// becomes the content node. Returns nil when nothing qualifies, which is
// the expected outcome for index pages and stub documents.
func (e *Extractor) BestNode(doc *goquery.Document) *goquery.Selection {
	scores := make(map[*html.Node]int)
	order := make([]*html.Node, 0)

	paragraphIndex := 0
	doc.Find("p, pre, td").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		stopwords := stopwordCount(text)
		if stopwords < minParagraphStopwords {
			return
		}
		if linkDensity(sel) > maxLinkDensity {
			return
		}

		score := stopwords
		if paragraphIndex < boostedParagraphs {
			score += paragraphBoost
		}
		paragraphIndex++

		node := sel.Get(0)
		if parent := node.Parent; parent != nil {
			if _, ok := scores[parent]; !ok {
				order = append(order, parent)
			}
			scores[parent] += score
			if grandparent := parent.Parent; grandparent != nil {
				if _, ok := scores[grandparent]; !ok {
					order = append(order, grandparent)
				}
				scores[grandparent] += score / 2
			}
		}
	})

	var best *html.Node
	bestScore := 0
	for _, node := range order {
		if scores[node] > bestScore {
			best = node
			bestScore = scores[node]
		}
	}
	if best == nil {
		return nil
	}
	return newSingleSelection(doc, best)
}

// PostCleanup prunes residual boilerplate from the chosen content node:
// non-paragraph child blocks that are link-heavy or carry no prose.
func (e *Extractor) PostCleanup(node *goquery.Selection) *goquery.Selection {
	if node == nil {
		return nil
	}
	node.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "p", "pre", "blockquote", "h1", "h2", "h3", "h4", "h5", "h6":
			return
		}
		text := strings.TrimSpace(child.Text())
		if stopwordCount(text) < minParagraphStopwords || linkDensity(child) > maxLinkDensity {
			child.Remove()
		}
	})
	return node
}

// linkDensity returns the ratio of words inside anchors to all words in the
// selection. Empty selections count as fully linked.
func linkDensity(sel *goquery.Selection) float64 {
	words := wordCount(sel.Text())
	if words == 0 {
		return 1.0
	}
	linkWords := 0
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkWords += wordCount(a.Text())
	})
	return float64(linkWords) / float64(words)
}

// newSingleSelection wraps a single node in a Selection bound to doc.
func newSingleSelection(doc *goquery.Document, node *html.Node) *goquery.Selection {
	sel := doc.FindNodes(node)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}
