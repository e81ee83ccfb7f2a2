package adaptertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

// TestRecordStore runs the RecordStore contract against an implementation.
// Every store adapter should pass this suite unchanged.
func TestRecordStore(t *testing.T, factory func(t *testing.T) dashboard.RecordStore) {
	t.Run("Lookup of a missing record", func(t *testing.T) {
		store := factory(t)

		_, err := store.Lookup(context.Background(), "PO-404")
		require.ErrorIs(t, err, dashboard.ErrRecordNotFound)
	})

	t.Run("Upsert then lookup", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		for _, record := range dashboard.TestingRecords(t) {
			require.NoError(t, store.Upsert(ctx, record))
		}

		record, err := store.Lookup(ctx, "PO-2")
		require.NoError(t, err)
		require.Equal(t, dashboard.Status("Approved"), record.Status)
		require.Equal(t, "Madura Mills", record.CounterpartyName)
		require.EqualValues(t, 1, record.Version)
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		for _, record := range dashboard.TestingRecords(t) {
			require.NoError(t, store.Upsert(ctx, record))
		}

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, "PO-1", records[0].ID)
		require.Equal(t, "PO-2", records[1].ID)
		require.Equal(t, "PO-3", records[2].ID)
	})

	t.Run("Upsert replaces by id and bumps the version", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		record := dashboard.TestingRecords(t)[0]
		require.NoError(t, store.Upsert(ctx, record))

		record.CounterpartyName = "Coats India Private Limited"
		require.NoError(t, store.Upsert(ctx, record))

		updated, err := store.Lookup(ctx, record.ID)
		require.NoError(t, err)
		require.Equal(t, "Coats India Private Limited", updated.CounterpartyName)
		require.EqualValues(t, 2, updated.Version)

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("ApplyTransition commits a proposal", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Upsert(ctx, dashboard.TestingRecords(t)[0]))

		record, err := store.Lookup(ctx, "PO-1")
		require.NoError(t, err)

		updated, err := store.ApplyTransition(ctx, dashboard.Proposal{
			RecordID:      "PO-1",
			FromStatus:    record.Status,
			ToStatus:      "Pending",
			RecordVersion: record.Version,
		})
		require.NoError(t, err)
		require.Equal(t, dashboard.Status("Pending"), updated.Status)
		require.Equal(t, record.Version+1, updated.Version)
	})

	t.Run("Second commit against the same snapshot is stale", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Upsert(ctx, dashboard.TestingRecords(t)[0]))

		record, err := store.Lookup(ctx, "PO-1")
		require.NoError(t, err)

		first := dashboard.Proposal{
			RecordID:      "PO-1",
			FromStatus:    record.Status,
			ToStatus:      "Pending",
			RecordVersion: record.Version,
		}
		second := dashboard.Proposal{
			RecordID:      "PO-1",
			FromStatus:    record.Status,
			ToStatus:      "Cancelled",
			RecordVersion: record.Version,
		}

		_, err = store.ApplyTransition(ctx, first)
		require.NoError(t, err)

		_, err = store.ApplyTransition(ctx, second)
		require.ErrorIs(t, err, dashboard.ErrStaleRecord)

		// The failed commit left the record on the first transition's status.
		current, err := store.Lookup(ctx, "PO-1")
		require.NoError(t, err)
		require.Equal(t, dashboard.Status("Pending"), current.Status)
	})

	t.Run("ApplyTransition on a removed record is stale", func(t *testing.T) {
		store := factory(t)

		_, err := store.ApplyTransition(context.Background(), dashboard.Proposal{
			RecordID:      "PO-409",
			ToStatus:      "Pending",
			RecordVersion: 1,
		})
		require.ErrorIs(t, err, dashboard.ErrStaleRecord)
	})

	t.Run("Reads return copies", func(t *testing.T) {
		store := factory(t)
		ctx := context.Background()

		require.NoError(t, store.Upsert(ctx, dashboard.TestingRecords(t)[0]))

		record, err := store.Lookup(ctx, "PO-1")
		require.NoError(t, err)
		record.CounterpartyName = "mutated"
		*record.Amount = -1

		fresh, err := store.Lookup(ctx, "PO-1")
		require.NoError(t, err)
		require.Equal(t, "Coats India Pvt Ltd", fresh.CounterpartyName)
		require.Equal(t, 12500.0, *fresh.Amount)
	})
}
