package glean

import (
	"os"
	"path/filepath"
)

// Config holds the configuration surface consumed by the pipeline core.
type Config struct {
	// EnableImageFetching controls whether the image extraction stage runs.
	EnableImageFetching bool

	// LocalStoragePath is the directory used for per-article temp files
	// (downloaded image candidates). Files are named with the article's
	// linkhash as a prefix so cleanup can find them.
	LocalStoragePath string
}

// DefaultConfig returns a Config with image fetching enabled and temp
// storage under the system temp directory.
func DefaultConfig() Config {
	return Config{
		EnableImageFetching: true,
		LocalStoragePath:    filepath.Join(os.TempDir(), "glean"),
	}
}
