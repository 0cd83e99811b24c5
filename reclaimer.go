package glean

// Reclaimer deletes temp files namespaced to one article.
//
// Reclaim removes every entry in the configured temp directory whose name
// begins with the given linkhash. It is strictly best-effort: the returned
// error aggregates individual deletion failures for logging, and the
// pipeline treats it as a warning, never as a failure.
type Reclaimer interface {
	Reclaim(linkhash string) error
}
