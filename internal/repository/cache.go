package repository

import "context"

// SummaryCache memoizes computed loan summaries keyed by their input tuple.
// The engine is pure, so cached values never go stale for a given key; a TTL
// only bounds memory. Cache failures must never change calculation results.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
