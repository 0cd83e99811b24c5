package glean

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Link is a normalized URL together with its deterministic identifier.
type Link struct {
	// URL is the canonical absolute form of the input.
	URL string

	// Hash is a pure function of URL: the same canonical URL always yields
	// the same hash, across calls and across processes. It is used as a
	// filename prefix to namespace an article's temp files.
	Hash string
}

// NormalizeURL canonicalizes a raw URL string and derives its identifier.
// Canonicalization lowercases the scheme and host, collapses redundant path
// separators and dot segments, and strips the fragment. Query strings are
// preserved since they routinely select distinct documents.
//
// Returns EINVALID if the input is not an absolute http(s) URL.
func NormalizeURL(raw string) (Link, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Link{}, Errorf(EINVALID, "unparseable URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Link{}, Errorf(EINVALID, "unsupported scheme %q in URL %q", u.Scheme, raw)
	}
	if u.Host == "" {
		return Link{}, Errorf(EINVALID, "missing host in URL %q", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if u.Path != "" {
		// path.Clean collapses "//" and resolves "." and ".." segments.
		// A trailing slash is significant to many servers, so keep it.
		trailing := strings.HasSuffix(u.Path, "/") && u.Path != "/"
		u.Path = path.Clean(u.Path)
		if trailing {
			u.Path += "/"
		}
	}

	canonical := u.String()
	return Link{
		URL:  canonical,
		Hash: fmt.Sprintf("%x", xxhash.Sum64String(canonical)),
	}, nil
}
