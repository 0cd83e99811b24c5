package glean

import "context"

// ImageExtractor selects a representative image for an article.
//
// Implementations score candidates against the article's RawDoc snapshot
// (the pre-clean structure) and its TopNode, and may cache downloaded
// candidates to local temp storage using a.Linkhash as the filename prefix
// so the Reclaimer can find them afterwards.
//
// BestImage failures are recoverable by contract: the pipeline logs them
// and proceeds with no image.
type ImageExtractor interface {
	BestImage(ctx context.Context, a *Article) (*Image, error)
}
