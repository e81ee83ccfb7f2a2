package dashboard

import "context"

// RecordStore owns the authoritative record list. All reads return defensive
// copies; callers can never mutate stored records directly. Implementations
// should all be tested with adaptertest.TestRecordStore.
type RecordStore interface {
	// Lookup returns the record with the given id or ErrRecordNotFound.
	Lookup(ctx context.Context, id string) (*Record, error)

	// List returns all records in native order, which is the order records
	// were first stored in (typically reverse-chronological as loaded).
	List(ctx context.Context) ([]Record, error)

	// Upsert inserts a new record or replaces an existing one by id. The
	// store owns Version, CreatedAt and UpdatedAt; callers should not set
	// them.
	Upsert(ctx context.Context, record Record) error

	// ApplyTransition commits a validated status change as a single
	// check-then-set step. If the record was removed, or its version no
	// longer matches the version the proposal was computed from, it fails
	// with ErrStaleRecord and leaves the record untouched.
	ApplyTransition(ctx context.Context, proposal Proposal) (*Record, error)
}
