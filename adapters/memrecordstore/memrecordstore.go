package memrecordstore

import (
	"context"
	"sync"

	"k8s.io/utils/clock"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

func New(opts ...Option) *Store {
	// Set option defaults
	opt := options{
		clock: clock.RealClock{},
	}

	// Set option overrides
	for _, o := range opts {
		o(&opt)
	}

	return &Store{
		records: make(map[string]*dashboard.Record),
		clock:   opt.clock,
	}
}

type options struct {
	clock clock.PassiveClock
}

type Option func(o *options)

// WithClock overrides the real clock, for tests that need deterministic
// timestamps.
func WithClock(clock clock.PassiveClock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

var _ dashboard.RecordStore = (*Store)(nil)

// Store is the in-memory RecordStore. It hands out copies only; the records
// it holds can never be reached by reference from outside.
type Store struct {
	mu    sync.Mutex
	clock clock.PassiveClock

	records map[string]*dashboard.Record
	order   []string
}

func (s *Store) Lookup(ctx context.Context, id string) (*dashboard.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, dashboard.ErrRecordNotFound
	}

	clone := dashboard.CopyRecords([]dashboard.Record{*record})[0]
	return &clone, nil
}

func (s *Store) List(ctx context.Context) ([]dashboard.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]dashboard.Record, 0, len(s.order))
	for _, id := range s.order {
		record, ok := s.records[id]
		if !ok {
			continue
		}

		records = append(records, *record)
	}

	return dashboard.CopyRecords(records), nil
}

func (s *Store) Upsert(ctx context.Context, record dashboard.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	clone := dashboard.CopyRecords([]dashboard.Record{record})[0]
	clone.UpdatedAt = now

	previous, exists := s.records[record.ID]
	if exists {
		clone.Version = previous.Version + 1
		clone.CreatedAt = previous.CreatedAt
	} else {
		clone.Version = 1
		clone.CreatedAt = now
		s.order = append(s.order, record.ID)
	}

	s.records[record.ID] = &clone

	return nil
}

func (s *Store) ApplyTransition(ctx context.Context, proposal dashboard.Proposal) (*dashboard.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[proposal.RecordID]
	if !ok {
		// A record removed since the proposal was computed is stale, not
		// missing: the caller must re-evaluate, not retry the same proposal.
		return nil, dashboard.ErrStaleRecord
	}

	if record.Version != proposal.RecordVersion {
		return nil, dashboard.ErrStaleRecord
	}

	record.Status = proposal.ToStatus
	record.Version++
	record.UpdatedAt = s.clock.Now()

	clone := dashboard.CopyRecords([]dashboard.Record{*record})[0]
	return &clone, nil
}

// Delete removes a record. Outstanding proposals against it will fail with
// ErrStaleRecord at commit time.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return dashboard.ErrRecordNotFound
	}

	delete(s.records, id)

	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
