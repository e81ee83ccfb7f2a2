package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

func TestSortByStatusString(t *testing.T) {
	records := dashboard.TestingRecords(t)

	sorted, err := dashboard.SortBy(records, dashboard.ColumnStatus, dashboard.DirectionAscending)
	require.NoError(t, err)
	// "Approved" < "Draft" < "Partial" as case-sensitive strings.
	require.Equal(t, []string{"PO-2", "PO-1", "PO-3"}, ids(sorted))
}

func TestSortByAmountNumeric(t *testing.T) {
	records := dashboard.TestingRecords(t)

	sorted, err := dashboard.SortBy(records, dashboard.ColumnAmount, dashboard.DirectionAscending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-2", "PO-1", "PO-3"}, ids(sorted))

	sorted, err = dashboard.SortBy(records, dashboard.ColumnAmount, dashboard.DirectionDescending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-3", "PO-1", "PO-2"}, ids(sorted))
}

func TestSortAbsentNumericOrdersFirst(t *testing.T) {
	records := dashboard.TestingRecords(t)
	records[1].Amount = nil

	sorted, err := dashboard.SortBy(records, dashboard.ColumnAmount, dashboard.DirectionAscending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-2", "PO-1", "PO-3"}, ids(sorted))
}

func TestSortStability(t *testing.T) {
	records := dashboard.TestingRecords(t)
	// Give every record the same status so the whole input is one tie group.
	for i := range records {
		records[i].Status = "Draft"
	}

	asc, err := dashboard.SortBy(records, dashboard.ColumnStatus, dashboard.DirectionAscending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, ids(asc))

	// Ties keep input order in descending too.
	desc, err := dashboard.SortBy(records, dashboard.ColumnStatus, dashboard.DirectionDescending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, ids(desc))
}

func TestSortIsIdempotent(t *testing.T) {
	records := dashboard.TestingRecords(t)

	once, err := dashboard.SortBy(records, dashboard.ColumnCounterparty, dashboard.DirectionDescending)
	require.NoError(t, err)

	twice, err := dashboard.SortBy(once, dashboard.ColumnCounterparty, dashboard.DirectionDescending)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestSortByDate(t *testing.T) {
	records := dashboard.TestingRecords(t)

	sorted, err := dashboard.SortBy(records, dashboard.ColumnDate, dashboard.DirectionDescending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-3", "PO-2", "PO-1"}, ids(sorted))
}

func TestSortNoColumnKeepsNativeOrder(t *testing.T) {
	records := dashboard.TestingRecords(t)
	reversed := []dashboard.Record{records[2], records[1], records[0]}

	sorted, err := dashboard.SortBy(reversed, dashboard.ColumnNone, dashboard.DirectionAscending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-3", "PO-2", "PO-1"}, ids(sorted))
}

func TestSortUnknownColumn(t *testing.T) {
	_, err := dashboard.SortBy(dashboard.TestingRecords(t), "supplier_rating", dashboard.DirectionAscending)
	require.ErrorIs(t, err, dashboard.ErrUnknownColumn)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := dashboard.TestingRecords(t)

	_, err := dashboard.SortBy(records, dashboard.ColumnStatus, dashboard.DirectionAscending)
	require.NoError(t, err)
	require.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, ids(records))
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "asc", dashboard.DirectionAscending.String())
	require.Equal(t, "desc", dashboard.DirectionDescending.String())
	require.Equal(t, "", dashboard.DirectionUnknown.String())
}
