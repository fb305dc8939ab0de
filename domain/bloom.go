package domain

import "context"

// BloomUsers is the bloom namespace holding user (channel) ids.
// Content ids live under their TargetKind name.
const BloomUsers = "user"

type BloomRepository interface {
	// Add puts id into the filter of the given namespace.
	Add(ctx context.Context, namespace string, id int64) error

	// Exists checks whether id may be present.
	// true: maybe present, ask the database.
	// false: definitely absent, answer NotFound right away.
	Exists(ctx context.Context, namespace string, id int64) (bool, error)

	// BulkAdd is used to seed many ids at once.
	BulkAdd(ctx context.Context, namespace string, ids []int64) error
}
