// Package fs provides filesystem-backed temp-resource reclamation.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/glean-dev/glean"
)

// Ensure Reclaimer implements glean.Reclaimer at compile time.
var _ glean.Reclaimer = (*Reclaimer)(nil)

// Reclaimer deletes an article's temp files from a directory.
// Files belong to an article when their name starts with its linkhash;
// distinct crawls never share a prefix, so no cross-crawl coordination is
// needed.
type Reclaimer struct {
	dir string
}

// NewReclaimer creates a Reclaimer over the given temp directory.
func NewReclaimer(dir string) *Reclaimer {
	return &Reclaimer{dir: dir}
}

// Reclaim removes every entry in the directory whose name begins with
// linkhash. Individual deletion failures are aggregated into the returned
// error for the caller to log; a missing directory means nothing to do.
func (r *Reclaimer) Reclaim(linkhash string) error {
	if linkhash == "" {
		return glean.Errorf(glean.EINVALID, "empty linkhash")
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var errs []error
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), linkhash) {
			continue
		}
		if err := os.Remove(filepath.Join(r.dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
