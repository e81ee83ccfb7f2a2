package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

// Date is a civil calendar date. Calendar bucketing compares Date fields
// structurally; formatted strings are never matched against.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DateOf truncates a time to its civil date in the time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// dateLayouts are the ingestion formats accepted by ParseDate: ISO dates and
// the display forms the upstream documents carry.
var dateLayouts = []string{
	"2006-01-02",
	"02 Jan 2006",
	"2 Jan 2006",
	"02/01/2006",
}

// ParseDate parses a date string into a structural Date at ingestion time.
func ParseDate(value string) (Date, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			// NoReturnErr: Try the next accepted layout.
			continue
		}

		return DateOf(t), nil
	}

	return Date{}, errors.New("unparseable record date", j.KV("value", value))
}

// Record is one business document instance, e.g. a purchase order or a
// goods-receipt note. The engine interprets only the fields below; anything
// else a document carries lives in Fields and is display-only.
type Record struct {
	ID               string
	Date             Date
	Status           Status
	CounterpartyName string

	Amount    *float64
	ItemCount *int64

	// Fields holds additional display values keyed by column. The engine
	// never interprets them.
	Fields map[string]string

	// Version increments on every store mutation and is what ApplyTransition
	// checks to detect a stale proposal.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ColumnKey identifies a sortable, exportable record column.
type ColumnKey string

const (
	ColumnNone         ColumnKey = ""
	ColumnID           ColumnKey = "id"
	ColumnDate         ColumnKey = "date"
	ColumnStatus       ColumnKey = "status"
	ColumnCounterparty ColumnKey = "counterparty"
	ColumnAmount       ColumnKey = "amount"
	ColumnItemCount    ColumnKey = "item_count"
)

// Columns returns the record columns the engine understands, in display order.
func Columns() []ColumnKey {
	return []ColumnKey{
		ColumnID,
		ColumnDate,
		ColumnStatus,
		ColumnCounterparty,
		ColumnAmount,
		ColumnItemCount,
	}
}

// ColumnValue returns the display value of the record for the given column.
func (r Record) ColumnValue(key ColumnKey) (string, error) {
	switch key {
	case ColumnID:
		return r.ID, nil
	case ColumnDate:
		return r.Date.String(), nil
	case ColumnStatus:
		return string(r.Status), nil
	case ColumnCounterparty:
		return r.CounterpartyName, nil
	case ColumnAmount:
		if r.Amount == nil {
			return "", nil
		}
		return strconv.FormatFloat(*r.Amount, 'f', 2, 64), nil
	case ColumnItemCount:
		if r.ItemCount == nil {
			return "", nil
		}
		return strconv.FormatInt(*r.ItemCount, 10), nil
	default:
		return "", errors.Wrap(ErrUnknownColumn, "", j.KV("column", string(key)))
	}
}

// copyRecord returns a deep copy so stores never hand out mutable references.
func copyRecord(r Record) Record {
	clone := r

	if r.Amount != nil {
		amount := *r.Amount
		clone.Amount = &amount
	}

	if r.ItemCount != nil {
		count := *r.ItemCount
		clone.ItemCount = &count
	}

	if r.Fields != nil {
		clone.Fields = make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			clone.Fields[k] = v
		}
	}

	return clone
}

// CopyRecords returns a defensive copy of a record slice.
func CopyRecords(records []Record) []Record {
	clones := make([]Record, 0, len(records))
	for _, r := range records {
		clones = append(clones, copyRecord(r))
	}

	return clones
}
