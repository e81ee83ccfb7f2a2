package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"k8s.io/utils/clock"
	_ "modernc.org/sqlite"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

// Open creates a SQLite connection configured for dashboard usage.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// InitSchema creates the records table.
func InitSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS dashboard_records (
    id           TEXT NOT NULL PRIMARY KEY,
    record_date  TEXT NOT NULL,
    status       TEXT NOT NULL,
    counterparty TEXT NOT NULL,
    amount       REAL,
    item_count   INTEGER,
    fields       BLOB,
    version      INTEGER NOT NULL,
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dashboard_records_status
    ON dashboard_records (status);
`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	return nil
}

func New(db *sql.DB, opts ...Option) *Store {
	opt := options{
		clock: clock.RealClock{},
	}

	for _, o := range opts {
		o(&opt)
	}

	return &Store{
		db:    db,
		clock: opt.clock,
	}
}

type options struct {
	clock clock.PassiveClock
}

type Option func(o *options)

func WithClock(clock clock.PassiveClock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

var _ dashboard.RecordStore = (*Store)(nil)

type Store struct {
	db    *sql.DB
	clock clock.PassiveClock
}

const recordCols = " id, record_date, status, counterparty, amount, item_count, fields, version, created_at, updated_at "

func (s *Store) Lookup(ctx context.Context, id string) (*dashboard.Record, error) {
	row := s.db.QueryRowContext(ctx, "select"+recordCols+"from dashboard_records where id=?", id)
	return recordScan(row)
}

func (s *Store) List(ctx context.Context) ([]dashboard.Record, error) {
	// rowid order is insertion order, the store's native ordering.
	rows, err := s.db.QueryContext(ctx, "select"+recordCols+"from dashboard_records order by rowid asc")
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	defer rows.Close()

	var records []dashboard.Record
	for rows.Next() {
		record, err := recordScan(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, *record)
	}

	return records, rows.Err()
}

func (s *Store) Upsert(ctx context.Context, record dashboard.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin upsert")
	}
	defer tx.Rollback()

	now := s.clock.Now()

	fields, err := marshalFields(record.Fields)
	if err != nil {
		return err
	}

	var amount any
	if record.Amount != nil {
		amount = *record.Amount
	}

	var itemCount any
	if record.ItemCount != nil {
		itemCount = *record.ItemCount
	}

	existing, err := recordScan(tx.QueryRowContext(ctx, "select"+recordCols+"from dashboard_records where id=?", record.ID))
	if errors.Is(err, dashboard.ErrRecordNotFound) {
		_, err = tx.ExecContext(ctx,
			"insert into dashboard_records ("+recordCols+") values (?,?,?,?,?,?,?,?,?,?)",
			record.ID, record.Date.String(), string(record.Status), record.CounterpartyName,
			amount, itemCount, fields, 1, now, now,
		)
		if err != nil {
			return errors.Wrap(err, "insert record", j.KV("record_id", record.ID))
		}
	} else if err != nil {
		return err
	} else {
		_, err = tx.ExecContext(ctx,
			"update dashboard_records set record_date=?, status=?, counterparty=?, amount=?, item_count=?, fields=?, version=?, updated_at=? where id=?",
			record.Date.String(), string(record.Status), record.CounterpartyName,
			amount, itemCount, fields, existing.Version+1, now, record.ID,
		)
		if err != nil {
			return errors.Wrap(err, "update record", j.KV("record_id", record.ID))
		}
	}

	return tx.Commit()
}

func (s *Store) ApplyTransition(ctx context.Context, proposal dashboard.Proposal) (*dashboard.Record, error) {
	// The version predicate makes the commit a single check-then-set step.
	result, err := s.db.ExecContext(ctx,
		"update dashboard_records set status=?, version=version+1, updated_at=? where id=? and version=?",
		string(proposal.ToStatus), s.clock.Now(), proposal.RecordID, proposal.RecordVersion,
	)
	if err != nil {
		return nil, errors.Wrap(err, "apply transition", j.KV("record_id", proposal.RecordID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "apply transition rows affected")
	}

	if affected == 0 {
		return nil, errors.Wrap(dashboard.ErrStaleRecord, "", j.KV("record_id", proposal.RecordID))
	}

	return s.Lookup(ctx, proposal.RecordID)
}

type row interface {
	Scan(dest ...any) error
}

func recordScan(r row) (*dashboard.Record, error) {
	var (
		record    dashboard.Record
		date      string
		status    string
		amount    sql.NullFloat64
		itemCount sql.NullInt64
		fields    []byte
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.Scan(
		&record.ID, &date, &status, &record.CounterpartyName,
		&amount, &itemCount, &fields, &record.Version, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dashboard.ErrRecordNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "scan record")
	}

	if date != "" {
		record.Date, err = dashboard.ParseDate(date)
		if err != nil {
			return nil, err
		}
	}

	record.Status = dashboard.Status(status)

	if amount.Valid {
		record.Amount = &amount.Float64
	}

	if itemCount.Valid {
		record.ItemCount = &itemCount.Int64
	}

	if len(fields) > 0 {
		err = json.Unmarshal(fields, &record.Fields)
		if err != nil {
			return nil, errors.Wrap(err, "unmarshal record fields")
		}
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return &record, nil
}

func marshalFields(fields map[string]string) ([]byte, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "marshal record fields")
	}

	return data, nil
}
