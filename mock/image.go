package mock

import (
	"context"

	"github.com/glean-dev/glean"
)

var _ glean.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of glean.ImageExtractor.
type ImageExtractor struct {
	BestImageFn func(ctx context.Context, a *glean.Article) (*glean.Image, error)
}

func (e *ImageExtractor) BestImage(ctx context.Context, a *glean.Article) (*glean.Image, error) {
	return e.BestImageFn(ctx, a)
}
