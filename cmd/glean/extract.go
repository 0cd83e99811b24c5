package main

import (
	"encoding/json"
	"fmt"
	stdslog "log/slog"
	"os"

	"github.com/glean-dev/glean"
	"github.com/glean-dev/glean/crawl"
	"github.com/glean-dev/glean/dateparse"
	"github.com/glean-dev/glean/fs"
	"github.com/glean-dev/glean/goquery"
	gleanhttp "github.com/glean-dev/glean/http"
	"github.com/glean-dev/glean/htmltomarkdown"
	"github.com/glean-dev/glean/rod"
	gleanslog "github.com/glean-dev/glean/slog"
)

// Run executes the extract command.
func (cmd *ExtractCmd) Run(deps *Dependencies) error {
	if cmd.HTML != "" && len(cmd.URLs) != 1 {
		return glean.Errorf(glean.EINVALID, "--html requires exactly one URL")
	}

	level := stdslog.LevelWarn
	if cmd.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(deps.Stderr, &stdslog.HandlerOptions{Level: level}))

	cfg := glean.DefaultConfig()
	cfg.EnableImageFetching = cmd.Images
	if cmd.StoragePath != "" {
		cfg.LocalStoragePath = cmd.StoragePath
	}

	var fetcher glean.Fetcher
	if cmd.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			return fmt.Errorf("starting browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = gleanhttp.NewFetcher()
	}
	fetcher = gleanslog.NewFetcher(fetcher, logger)
	defer fetcher.Close()

	var formatter glean.OutputFormatter = goquery.NewFormatter()
	if cmd.Markdown {
		formatter = htmltomarkdown.NewFormatter()
	}

	crawler := &crawl.Crawler{
		Config:    cfg,
		Fetcher:   fetcher,
		Parser:    goquery.NewParser(),
		Cleaner:   goquery.NewCleaner(),
		Extractor: goquery.NewExtractor(),
		Images:    gleanhttp.NewImageExtractor(cfg.LocalStoragePath),
		Dates:     dateparse.NewExtractor(),
		Formatter: formatter,
		Reclaimer: fs.NewReclaimer(cfg.LocalStoragePath),
		Logger:    logger,
	}

	candidates := make([]glean.Candidate, 0, len(cmd.URLs))
	for _, u := range cmd.URLs {
		cand := glean.Candidate{URL: u}
		if cmd.HTML != "" {
			raw, err := os.ReadFile(cmd.HTML)
			if err != nil {
				return err
			}
			cand.RawHTML = string(raw)
		}
		candidates = append(candidates, cand)
	}

	pool := &crawl.Pool{Crawler: crawler, Concurrency: cmd.Concurrency}
	articles, result, err := pool.ExtractAll(deps.Ctx, candidates, func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressNotFound, crawl.ProgressFailed:
			logger.Warn("extraction failed", "url", event.URL, "err", event.Error)
		case crawl.ProgressExtracted:
			logger.Debug("extracted", "url", event.URL, "completed", event.Completed, "total", event.Total)
		}
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	for _, a := range articles {
		if a == nil {
			continue
		}
		if err := enc.Encode(a); err != nil {
			return err
		}
	}

	if result.Extracted == 0 {
		return glean.Errorf(glean.ENOTFOUND, "no articles extracted (%d not found, %d failed, %d skipped)",
			result.NotFound, result.Failed, result.Skipped)
	}
	return nil
}
