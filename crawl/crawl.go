// Package crawl provides the article extraction pipeline.
// It sequences URL normalization, fetching, parsing, metadata extraction,
// boilerplate cleaning, content-node clustering, image and video discovery,
// text rendering, and temp-resource cleanup, and owns the error and
// partial-failure policy for a run.
package crawl

import (
	"context"
	"log/slog"

	"github.com/glean-dev/glean"
)

// Crawler runs the extraction pipeline. Collaborators are supplied at
// construction; the Crawler never selects concrete strategies itself.
//
// Fetcher, Parser, Cleaner, Extractor, Formatter and Reclaimer are
// required. Images, Dates and Additional are optional stages and may be
// nil. A Crawler is stateless across runs and safe for concurrent use as
// long as its collaborators are.
type Crawler struct {
	Config glean.Config

	Fetcher    glean.Fetcher
	Parser     glean.Parser
	Cleaner    glean.DocumentCleaner
	Extractor  glean.ContentExtractor
	Images     glean.ImageExtractor
	Dates      glean.PublishDateExtractor
	Additional glean.AdditionalDataExtractor
	Formatter  glean.OutputFormatter
	Reclaimer  glean.Reclaimer

	// Logger receives the warn-level events for the fault-isolated stages
	// (image extraction, temp-file reclamation). Nil disables logging.
	Logger *slog.Logger
}

// Extract runs the pipeline for one candidate and returns the populated
// Article.
//
// The error taxonomy is deliberate: a malformed candidate returns EINVALID
// (caller bug); an invalid URL, a failed or empty fetch, and unparseable
// HTML return ENOTFOUND (expected open-web failures, no article); image
// extraction failures are logged and swallowed; reclamation failures are
// logged and swallowed. Every run that gets as far as a linkhash reclaims
// its temp files before returning, success or not.
func (c *Crawler) Extract(ctx context.Context, cand glean.Candidate) (*glean.Article, error) {
	if err := cand.Validate(); err != nil {
		return nil, err
	}

	link, err := glean.NormalizeURL(cand.URL)
	if err != nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "no article for %q: %s", cand.URL, glean.ErrorMessage(err))
	}

	a := &glean.Article{
		FinalURL: link.URL,
		Linkhash: link.Hash,
		RawHTML:  cand.RawHTML,
	}
	defer c.reclaim(a.Linkhash)

	if a.RawHTML == "" {
		html, err := c.Fetcher.Fetch(ctx, a.FinalURL)
		if err != nil {
			return nil, glean.Errorf(glean.ENOTFOUND, "no article for %q: fetch failed: %v", a.FinalURL, err)
		}
		a.RawHTML = html
	}
	if a.RawHTML == "" {
		return nil, glean.Errorf(glean.ENOTFOUND, "no article for %q: empty document", a.FinalURL)
	}

	// Two independent parses: Doc is the working tree the cleaning stages
	// prune; RawDoc is the pristine snapshot image scoring runs against.
	if a.Doc, err = c.Parser.Parse(a.RawHTML); err != nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "no article for %q: parse failed: %v", a.FinalURL, err)
	}
	if a.RawDoc, err = c.Parser.Parse(a.RawHTML); err != nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "no article for %q: parse failed: %v", a.FinalURL, err)
	}

	// Stage-independent metadata. These run unconditionally and are not
	// individually fault-isolated.
	a.Title = c.Extractor.Title(a.Doc)
	a.MetaDescription = c.Extractor.MetaDescription(a.Doc)
	a.MetaKeywords = c.Extractor.MetaKeywords(a.Doc)
	a.CanonicalLink = c.Extractor.CanonicalLink(a.Doc, a.FinalURL)
	a.Domain = c.Extractor.Domain(a.FinalURL)
	a.Tags = c.Extractor.Tags(a.Doc)
	if c.Dates != nil {
		a.PublishDate = c.Dates.Extract(a.Doc)
	}
	if c.Additional != nil {
		a.AdditionalData = c.Additional.Extract(a.Doc)
	}

	a.Doc = c.Cleaner.Clean(a.Doc)

	a.TopNode = c.Extractor.BestNode(a.Doc)
	if a.TopNode == nil {
		// No qualifying content cluster: the content-dependent fields
		// stay empty, the metadata above still ships.
		return a, nil
	}

	if c.Config.EnableImageFetching && c.Images != nil {
		img, err := c.Images.BestImage(ctx, a)
		if err != nil {
			c.warn("image extraction failed", "url", a.FinalURL, "err", err)
		} else {
			a.TopImage = img
		}
	}

	a.Movies = c.Extractor.Videos(a.TopNode)

	a.TopNode = c.Extractor.PostCleanup(a.TopNode)
	text, err := c.Formatter.Format(a.TopNode)
	if err != nil {
		return nil, err
	}
	a.CleanedText = text

	return a, nil
}

// reclaim deletes the article's temp files. Failures are warnings by
// contract, never pipeline errors.
func (c *Crawler) reclaim(linkhash string) {
	if c.Reclaimer == nil {
		return
	}
	if err := c.Reclaimer.Reclaim(linkhash); err != nil {
		c.warn("temp reclamation incomplete", "linkhash", linkhash, "err", err)
	}
}

func (c *Crawler) warn(msg string, args ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Warn(msg, args...)
}
