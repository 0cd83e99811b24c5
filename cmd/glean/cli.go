package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract articles from one or more URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs []string `arg:"" help:"Page URLs to extract"`

	HTML        string `help:"Read raw HTML from this file instead of fetching (single URL only)" type:"existingfile"`
	Images      bool   `help:"Fetch and score a representative image" default:"true" negatable:""`
	StoragePath string `help:"Directory for temp files (downloaded image candidates)"`
	Markdown    bool   `help:"Render article text as Markdown instead of plain text"`
	Render      bool   `help:"Render pages in a headless browser for JavaScript sites"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
	Verbose     bool   `short:"v" help:"Log fetch and pipeline details to stderr"`
}
