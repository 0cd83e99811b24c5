package mock

import "github.com/glean-dev/glean"

var _ glean.Reclaimer = (*Reclaimer)(nil)

// Reclaimer is a mock implementation of glean.Reclaimer.
// An unset ReclaimFn reports success.
type Reclaimer struct {
	ReclaimFn func(linkhash string) error
}

func (r *Reclaimer) Reclaim(linkhash string) error {
	if r.ReclaimFn == nil {
		return nil
	}
	return r.ReclaimFn(linkhash)
}
