package crawl

import (
	"context"
	"sync/atomic"

	"github.com/glean-dev/glean"
	"github.com/glean-dev/glean/bloom"
	"golang.org/x/sync/errgroup"
)

// Dedup filter sizing for a pool run.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// Pool extracts many candidates concurrently. Each candidate is handled by
// exactly one worker, end to end, synchronously; workers share no mutable
// state beyond the dedup filter.
type Pool struct {
	Crawler *Crawler

	// Concurrency bounds the number of in-flight extractions.
	// Defaults to 10.
	Concurrency int
}

// Result holds the outcome of a pool run.
type Result struct {
	Extracted int
	NotFound  int
	Failed    int
	Skipped   int
}

// ProgressEvent reports progress during a pool run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExtracted
	ProgressNotFound
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pool progress.
type ProgressFunc func(event ProgressEvent)

// ExtractAll runs the pipeline over every candidate and returns the
// extracted articles in candidate order, with nil entries for candidates
// that produced no article. Candidates normalizing to an already-seen URL
// are skipped. The returned error is non-nil only when the context is
// canceled; per-candidate failures are reported through the Result and
// progress events.
func (p *Pool) ExtractAll(ctx context.Context, candidates []glean.Candidate, progress ProgressFunc) ([]*glean.Article, *Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	var result Result
	articles := make([]*glean.Article, len(candidates))

	// Dedup by normalized URL so repeated submissions of the same page
	// cost one crawl. Bloom false positives trade an occasional skipped
	// duplicate-looking URL for constant memory.
	seen := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	run := make([]int, 0, len(candidates))
	for i, cand := range candidates {
		link, err := glean.NormalizeURL(cand.URL)
		if err != nil {
			// Let the pipeline produce the canonical error for it.
			run = append(run, i)
			continue
		}
		if seen.Test(link.URL) {
			result.Skipped++
			continue
		}
		seen.Add(link.URL)
		run = append(run, i)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(run)})
	}

	type outcome struct {
		index   int
		article *glean.Article
		err     error
	}
	outcomes := make(chan outcome, len(run))

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, i := range run {
		g.Go(func() error {
			a, err := p.Crawler.Extract(gctx, candidates[i])
			outcomes <- outcome{index: i, article: a, err: err}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(outcomes)
	}()

	for o := range outcomes {
		completed.Add(1)
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     len(run),
			URL:       candidates[o.index].URL,
		}
		switch {
		case o.err == nil:
			articles[o.index] = o.article
			result.Extracted++
			event.Type = ProgressExtracted
		case glean.ErrorCode(o.err) == glean.ENOTFOUND:
			result.NotFound++
			event.Type = ProgressNotFound
			event.Error = o.err
		default:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = o.err
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(run), Total: len(run)})
	}

	if err := ctx.Err(); err != nil {
		return articles, &result, err
	}
	return articles, &result, nil
}
