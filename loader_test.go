package dashboard_test

import (
	"context"
	"testing"

	"github.com/luno/jettison/errors"
	"github.com/stretchr/testify/require"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

type stubItemLoader struct {
	items []dashboard.Item
	err   error
}

func (s stubItemLoader) LoadItems(ctx context.Context) ([]dashboard.Item, error) {
	return s.items, s.err
}

type stubCounterpartyLoader struct {
	counterparties []dashboard.Counterparty
	err            error
}

func (s stubCounterpartyLoader) LoadCounterparties(ctx context.Context) ([]dashboard.Counterparty, error) {
	return s.counterparties, s.err
}

type stubRecordLoader struct {
	records []dashboard.Record
	err     error
}

func (s stubRecordLoader) LoadRecords(ctx context.Context, recordType dashboard.RecordType) ([]dashboard.Record, error) {
	return s.records, s.err
}

type stubRecordSaver struct {
	record dashboard.Record
	err    error
}

func (s stubRecordSaver) SaveRecord(ctx context.Context, header dashboard.RecordHeader, lines []dashboard.LineItem) (dashboard.Record, error) {
	return s.record, s.err
}

func TestLoadDashboard(t *testing.T) {
	ctx := context.Background()

	items := []dashboard.Item{{ID: "ITM-1", Name: "Cotton yarn", Unit: "kg", Rate: 120}}
	counterparties := []dashboard.Counterparty{{ID: "SUP-1", Name: "Coats India Pvt Ltd", City: "Madurai"}}
	records := dashboard.TestingRecords(t)

	data := dashboard.LoadDashboard(ctx,
		stubItemLoader{items: items},
		stubCounterpartyLoader{counterparties: counterparties},
		stubRecordLoader{records: records},
		dashboard.RecordTypePurchaseOrder,
	)

	require.NoError(t, data.ItemsErr)
	require.NoError(t, data.CounterpartiesErr)
	require.NoError(t, data.RecordsErr)
	require.Equal(t, items, data.Items)
	require.Equal(t, counterparties, data.Counterparties)
	require.Equal(t, records, data.Records)
}

func TestLoadDashboardPartialFailure(t *testing.T) {
	ctx := context.Background()

	// One failing part must not take the others down with it.
	data := dashboard.LoadDashboard(ctx,
		stubItemLoader{err: errors.Wrap(dashboard.ErrNetwork, "items endpoint down")},
		stubCounterpartyLoader{counterparties: []dashboard.Counterparty{{ID: "SUP-1", Name: "Madura Mills"}}},
		stubRecordLoader{records: dashboard.TestingRecords(t)},
		dashboard.RecordTypePurchaseOrder,
	)

	require.ErrorIs(t, data.ItemsErr, dashboard.ErrNetwork)
	require.Empty(t, data.Items)
	require.NoError(t, data.CounterpartiesErr)
	require.Len(t, data.Counterparties, 1)
	require.NoError(t, data.RecordsErr)
	require.Len(t, data.Records, 3)
}

func TestEngineSave(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	saved := dashboard.Record{
		ID:               "PO-4",
		Status:           "Draft",
		CounterpartyName: "Vardhman Textiles",
	}

	record, err := engine.Save(ctx, stubRecordSaver{record: saved}, dashboard.RecordHeader{ID: "PO-4"}, nil)
	require.NoError(t, err)
	require.Equal(t, "PO-4", record.ID)

	stored, err := store.Lookup(ctx, "PO-4")
	require.NoError(t, err)
	require.Equal(t, dashboard.Status("Draft"), stored.Status)
}

func TestEngineSaveFailureLeavesStoreUnchanged(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Save(ctx,
		stubRecordSaver{err: errors.Wrap(dashboard.ErrValidation, "quantity must be positive")},
		dashboard.RecordHeader{ID: "PO-4"}, nil,
	)
	require.ErrorIs(t, err, dashboard.ErrValidation)

	_, err = store.Lookup(ctx, "PO-4")
	require.ErrorIs(t, err, dashboard.ErrRecordNotFound)
}

func TestEngineLoadInto(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	loaded := []dashboard.Record{
		{ID: "PO-7", Status: "Pending", CounterpartyName: "Raymond Ltd"},
		{ID: "PO-8", Status: "Draft", CounterpartyName: "Arvind Mills"},
	}

	count, err := engine.LoadInto(ctx, stubRecordLoader{records: loaded}, dashboard.RecordTypePurchaseOrder)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 5)
}

func TestEngineLoadIntoFailure(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.LoadInto(ctx,
		stubRecordLoader{err: errors.Wrap(dashboard.ErrNetwork, "records endpoint down")},
		dashboard.RecordTypePurchaseOrder,
	)
	require.ErrorIs(t, err, dashboard.ErrNetwork)

	records, listErr := store.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, records, 3)
}
