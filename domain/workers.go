package domain

import "context"

// BloomRefresher keeps the existence prefilter seeded with newly created ids.
type BloomRefresher interface {
	// Seed walks every id of every namespace once. Used at startup.
	Seed(ctx context.Context) error

	// Start refreshes periodically until ctx is done.
	Start(ctx context.Context)
}
