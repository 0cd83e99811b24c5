// Package bloom provides URL deduplication for pool runs using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom-filter seen-set over normalized URLs.
// It trades occasional false positives for constant memory, which is the
// right trade for skipping duplicate crawl submissions.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL may have been seen.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
