package dashboard

import (
	"context"
	"sync"
)

// RecordType identifies which document family a load targets.
type RecordType string

const (
	RecordTypePurchaseOrder RecordType = "purchase_order"
	RecordTypeGoodsReceipt  RecordType = "goods_receipt"
)

// Item is a master-data row describing something that can be ordered.
type Item struct {
	ID   string
	Name string
	Unit string
	Rate float64
}

// Counterparty is a master-data row for the other party on a document,
// e.g. a supplier.
type Counterparty struct {
	ID   string
	Name string
	City string
}

// RecordHeader is the document-level half of a save request.
type RecordHeader struct {
	ID               string
	Date             Date
	Status           Status
	CounterpartyName string
}

// LineItem is one line of a document being saved.
type LineItem struct {
	ItemID   string
	Quantity float64
	Rate     float64
}

// The engine consumes these collaborator operations and never implements
// them; transport, persistence and retry policy live behind them.
// Implementations should wrap failures in ErrNetwork or ErrValidation so the
// caller can surface them as non-fatal notifications.
type (
	ItemLoader interface {
		LoadItems(ctx context.Context) ([]Item, error)
	}

	CounterpartyLoader interface {
		LoadCounterparties(ctx context.Context) ([]Counterparty, error)
	}

	RecordLoader interface {
		LoadRecords(ctx context.Context, recordType RecordType) ([]Record, error)
	}

	RecordSaver interface {
		SaveRecord(ctx context.Context, header RecordHeader, lines []LineItem) (Record, error)
	}
)

// DashboardData is the outcome of one combined load. Each part settles
// independently: a failed part carries its error while the others still
// populate.
type DashboardData struct {
	Items    []Item
	ItemsErr error

	Counterparties    []Counterparty
	CounterpartiesErr error

	Records    []Record
	RecordsErr error
}

// LoadDashboard issues the three independent loads together and waits for
// all of them to settle. It never fails as a whole; inspect the per-part
// errors. Cancelling the context abandons whatever is still in flight.
func LoadDashboard(
	ctx context.Context,
	items ItemLoader,
	counterparties CounterpartyLoader,
	records RecordLoader,
	recordType RecordType,
) DashboardData {
	var (
		data DashboardData
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Items, data.ItemsErr = items.LoadItems(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Counterparties, data.CounterpartiesErr = counterparties.LoadCounterparties(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Records, data.RecordsErr = records.LoadRecords(ctx, recordType)
	}()
	wg.Wait()

	return data
}

// Save persists a document via the saver and, only on success, writes the
// returned record through to the store. A failed save leaves the store
// unchanged.
func (e *Engine) Save(ctx context.Context, saver RecordSaver, header RecordHeader, lines []LineItem) (*Record, error) {
	saved, err := saver.SaveRecord(ctx, header, lines)
	if err != nil {
		return nil, err
	}

	err = e.Upsert(ctx, saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// LoadInto replaces the engine's view of the given record type by upserting
// every loaded record into the store.
func (e *Engine) LoadInto(ctx context.Context, loader RecordLoader, recordType RecordType) (int, error) {
	records, err := loader.LoadRecords(ctx, recordType)
	if err != nil {
		return 0, err
	}

	for _, record := range records {
		err := e.Upsert(ctx, record)
		if err != nil {
			return 0, err
		}
	}

	return len(records), nil
}
