package http

import (
	"bytes"
	"context"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	// Register decoders for the formats worth scoring.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
	"github.com/google/uuid"
)

// Image candidate limits. Downloads are capped because pages routinely
// carry dozens of tracker pixels and thumbnails.
const (
	DefaultMaxCandidates = 15
	DefaultMinDimension  = 50
	maxImageBytes        = 5 << 20
	maxAspectRatio       = 5.0
)

// badImageNames marks filenames that are never article images: sprites,
// icons, ad creatives, tracking pixels.
var badImageNames = regexp.MustCompile(`(?i)(sprite|blank|pixel|icon|logo|badge|spacer|gradient|thumbnail|avatar|\.gif$)`)

// Ensure ImageExtractor implements glean.ImageExtractor at compile time.
var _ glean.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor selects a representative image for an article.
//
// It prefers the image the page itself declares (og:image and friends on
// the pristine snapshot); otherwise it downloads the <img> candidates
// around the article's content node, caches them under the configured
// storage path with the article's linkhash as filename prefix, and scores
// them by decoded dimensions. The cached files are left for the pipeline's
// Reclaimer to delete.
type ImageExtractor struct {
	client        *http.Client
	storagePath   string
	userAgent     string
	maxCandidates int
	minDimension  int
}

// ImageOption configures an ImageExtractor.
type ImageOption func(*ImageExtractor)

// WithImageTimeout sets the per-download timeout.
func WithImageTimeout(d time.Duration) ImageOption {
	return func(e *ImageExtractor) {
		e.client.Timeout = d
	}
}

// WithMaxCandidates caps the number of images downloaded per article.
func WithMaxCandidates(n int) ImageOption {
	return func(e *ImageExtractor) {
		e.maxCandidates = n
	}
}

// WithMinDimension sets the minimum width and height for a scored image.
func WithMinDimension(px int) ImageOption {
	return func(e *ImageExtractor) {
		e.minDimension = px
	}
}

// NewImageExtractor creates an ImageExtractor caching downloads under
// storagePath.
func NewImageExtractor(storagePath string, opts ...ImageOption) *ImageExtractor {
	e := &ImageExtractor{
		client:        &http.Client{Timeout: DefaultFetchTimeout},
		storagePath:   storagePath,
		userAgent:     DefaultUserAgent,
		maxCandidates: DefaultMaxCandidates,
		minDimension:  DefaultMinDimension,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BestImage selects the representative image for the article. It reads the
// pristine snapshot (a.RawDoc) and the content node (a.TopNode) and never
// mutates either. Returns ENOTFOUND when no candidate qualifies.
func (e *ImageExtractor) BestImage(ctx context.Context, a *glean.Article) (*glean.Image, error) {
	if a.RawDoc == nil {
		return nil, glean.Errorf(glean.EINVALID, "article has no snapshot DOM")
	}

	if img, err := e.fromMeta(ctx, a); err == nil {
		return img, nil
	}
	return e.fromScoring(ctx, a)
}

// metaImageSelectors are checked in order of trustworthiness.
var metaImageSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="og:image"]`, "content"},
	{`meta[name="twitter:image"]`, "content"},
	{`link[rel="image_src"]`, "href"},
}

// fromMeta returns the page-declared image when it downloads and decodes.
func (e *ImageExtractor) fromMeta(ctx context.Context, a *glean.Article) (*glean.Image, error) {
	for _, m := range metaImageSelectors {
		src, ok := a.RawDoc.Find(m.selector).First().Attr(m.attr)
		if !ok {
			continue
		}
		src = e.resolveSrc(a.FinalURL, src)
		if src == "" {
			continue
		}
		img, err := e.download(ctx, a.Linkhash, src)
		if err != nil {
			continue
		}
		img.Extraction = glean.ImageFromMeta
		img.Confidence = 1
		return img, nil
	}
	return nil, glean.Errorf(glean.ENOTFOUND, "no usable meta image")
}

// fromScoring downloads the <img> candidates around the content node and
// picks the largest, with a position decay so lead images beat galleries.
func (e *ImageExtractor) fromScoring(ctx context.Context, a *glean.Article) (*glean.Image, error) {
	if a.TopNode == nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "no content node to score images around")
	}

	srcs := e.candidateSrcs(a)
	if len(srcs) == 0 {
		return nil, glean.Errorf(glean.ENOTFOUND, "no image candidates")
	}

	var best *glean.Image
	bestScore := 0.0
	for i, src := range srcs {
		img, err := e.download(ctx, a.Linkhash, src)
		if err != nil {
			continue
		}
		if img.Width < e.minDimension || img.Height < e.minDimension {
			continue
		}
		ratio := float64(img.Width) / float64(img.Height)
		if ratio > maxAspectRatio || ratio < 1/maxAspectRatio {
			continue
		}

		score := float64(img.Width*img.Height) / float64(i+1)
		if score > bestScore {
			img.Extraction = glean.ImageFromScoring
			img.Confidence = score
			best = img
			bestScore = score
		}
	}

	if best == nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "no image candidate qualified")
	}
	return best, nil
}

// candidateSrcs collects image URLs from the content node, walking up a
// couple of ancestor levels when the node itself has none. The lookup runs
// against the snapshot tree, where the images still exist.
func (e *ImageExtractor) candidateSrcs(a *glean.Article) []string {
	node := snapshotNode(a)
	if node == nil {
		return nil
	}

	var srcs []string
	seen := make(map[string]struct{})
	for level := 0; node != nil && level < 3; level++ {
		node.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
			if len(srcs) >= e.maxCandidates {
				return
			}
			src, _ := img.Attr("src")
			src = e.resolveSrc(a.FinalURL, src)
			if src == "" || badImageNames.MatchString(src) {
				return
			}
			if _, ok := seen[src]; ok {
				return
			}
			seen[src] = struct{}{}
			srcs = append(srcs, src)
		})
		if len(srcs) > 0 {
			break
		}
		node = node.Parent()
		if node.Length() == 0 {
			break
		}
	}
	return srcs
}

// snapshotNode maps the content node back onto the pristine snapshot by
// path of child indexes. The working tree has been pruned by then, so the
// node pointer itself belongs to the wrong document.
func snapshotNode(a *glean.Article) *goquery.Selection {
	if a.TopNode == nil || a.TopNode.Length() == 0 {
		return nil
	}
	// Prefer an id match, which survives cleaning-stage mutations.
	if id, ok := a.TopNode.Attr("id"); ok && id != "" {
		if sel := a.RawDoc.Find("#" + id); sel.Length() > 0 {
			return sel.First()
		}
	}
	// Fall back to scoring images across the whole snapshot body.
	return a.RawDoc.Find("body").First()
}

// resolveSrc resolves an image reference against the page URL, dropping
// data URIs and unparseable values.
func (e *ImageExtractor) resolveSrc(pageURL, src string) string {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// download fetches the image, caches it under the storage path as
// <linkhash>_<uuid><ext>, and returns it with decoded dimensions.
func (e *ImageExtractor) download(ctx context.Context, linkhash, src string) (*glean.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, glean.Errorf(glean.ENOTFOUND, "HTTP %d for image %s", resp.StatusCode, src)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, glean.Errorf(glean.ENOTFOUND, "undecodable image %s: %v", src, err)
	}

	if err := os.MkdirAll(e.storagePath, 0o755); err != nil {
		return nil, err
	}
	name := linkhash + "_" + uuid.NewString() + imageExt(src)
	if err := os.WriteFile(filepath.Join(e.storagePath, name), data, 0o644); err != nil {
		return nil, err
	}

	return &glean.Image{
		Src:    src,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  int64(len(data)),
	}, nil
}

// imageExt returns the file extension of the image URL's path, ignoring
// query strings.
func imageExt(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}
