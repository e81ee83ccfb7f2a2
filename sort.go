package dashboard

import (
	"sort"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

type Direction int

const (
	DirectionUnknown    Direction = 0
	DirectionAscending  Direction = 1
	DirectionDescending Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	default:
		return ""
	}
}

// SortBy returns a copy of records stably ordered by the given column.
// Numeric columns compare numerically, the rest compare as case-sensitive
// strings. Descending inverts the comparison but ties keep their relative
// input order, so descending with a constant key leaves the input untouched.
// ColumnNone returns the records in their native order.
func SortBy(records []Record, key ColumnKey, direction Direction) ([]Record, error) {
	out := make([]Record, len(records))
	copy(out, records)

	if key == ColumnNone {
		return out, nil
	}

	less, err := columnLess(key)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if direction == DirectionDescending {
			return less(out[j], out[i])
		}

		return less(out[i], out[j])
	})

	return out, nil
}

func columnLess(key ColumnKey) (func(a, b Record) bool, error) {
	switch key {
	case ColumnID:
		return func(a, b Record) bool { return a.ID < b.ID }, nil
	case ColumnDate:
		return func(a, b Record) bool { return a.Date.Before(b.Date) }, nil
	case ColumnStatus:
		return func(a, b Record) bool { return a.Status < b.Status }, nil
	case ColumnCounterparty:
		return func(a, b Record) bool { return a.CounterpartyName < b.CounterpartyName }, nil
	case ColumnAmount:
		return func(a, b Record) bool { return lessFloat(a.Amount, b.Amount) }, nil
	case ColumnItemCount:
		return func(a, b Record) bool { return lessInt(a.ItemCount, b.ItemCount) }, nil
	default:
		return nil, errors.Wrap(ErrUnknownColumn, "", j.KV("column", string(key)))
	}
}

// Absent numeric values order before any present value.
func lessFloat(a, b *float64) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}

func lessInt(a, b *int64) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}
