package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

func TestRollupOf(t *testing.T) {
	definition := dashboard.TestingDefinition(t)
	records := dashboard.TestingRecords(t)

	rollup, err := dashboard.RollupOf(records, definition)
	require.NoError(t, err)

	require.Equal(t, 3, rollup.Count)
	require.Equal(t, 12500+8400.50+21000, rollup.TotalAmount)
	require.EqualValues(t, 10, rollup.TotalItems)
	require.Equal(t, map[dashboard.Status]int{
		"Draft":    1,
		"Approved": 1,
		"Partial":  1,
	}, rollup.ByStatus)
	require.Equal(t, map[dashboard.StageGroup]int{
		"Not Started": 1,
		"In Progress": 2,
	}, rollup.ByStage)
}

func TestRollupOfEmptySet(t *testing.T) {
	rollup, err := dashboard.RollupOf(nil, dashboard.TestingDefinition(t))
	require.NoError(t, err)
	require.Zero(t, rollup.Count)
	require.Zero(t, rollup.TotalAmount)
	require.Empty(t, rollup.ByStatus)
}

func TestRollupOfTracksFilteredSet(t *testing.T) {
	definition := dashboard.TestingDefinition(t)
	records := dashboard.TestingRecords(t)

	filtered := dashboard.ApplyFilter(records, dashboard.NewSavedFilter("Active", "Approved", "Partial"), dashboard.FilterValue{}, "")

	rollup, err := dashboard.RollupOf(filtered, definition)
	require.NoError(t, err)
	require.Equal(t, 2, rollup.Count)
	require.Equal(t, 8400.50+21000, rollup.TotalAmount)
}

func TestRollupOfOrphanStatus(t *testing.T) {
	_, err := dashboard.RollupOf([]dashboard.Record{{ID: "PO-1", Status: "Limbo"}}, dashboard.TestingDefinition(t))
	require.ErrorIs(t, err, dashboard.ErrUnknownStatus)
}
