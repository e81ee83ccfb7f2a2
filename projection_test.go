package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

func TestProjectTableIsIdentity(t *testing.T) {
	records := dashboard.TestingRecords(t)
	columns := []dashboard.TableColumn{
		{Key: dashboard.ColumnID, Title: "PO Number"},
		{Key: dashboard.ColumnStatus, Title: "Status"},
	}

	projection := dashboard.ProjectTable(records, columns)
	require.Equal(t, records, projection.Rows)
	require.Equal(t, columns, projection.Columns)
}

func TestProjectKanban(t *testing.T) {
	definition := dashboard.TestingDefinition(t)
	records := dashboard.TestingRecords(t)

	projection, err := dashboard.ProjectKanban(records, definition)
	require.NoError(t, err)

	// Only stages with populated statuses appear, in declared stage order.
	require.Len(t, projection.Stages, 2)
	require.Equal(t, dashboard.StageGroup("Not Started"), projection.Stages[0].Stage)
	require.Equal(t, dashboard.StageGroup("In Progress"), projection.Stages[1].Stage)

	notStarted := projection.Stages[0]
	require.Len(t, notStarted.Lanes, 1)
	require.Equal(t, dashboard.Status("Draft"), notStarted.Lanes[0].Status)
	require.Equal(t, []string{"PO-1"}, ids(notStarted.Lanes[0].Records))

	inProgress := projection.Stages[1]
	require.Len(t, inProgress.Lanes, 2)
	require.Equal(t, dashboard.Status("Approved"), inProgress.Lanes[0].Status)
	require.Equal(t, dashboard.Status("Partial"), inProgress.Lanes[1].Status)
	require.Equal(t, "#4caf50", inProgress.Lanes[0].Color)
}

func TestProjectKanbanPartitionsExactly(t *testing.T) {
	definition := dashboard.TestingDefinition(t)
	records := dashboard.TestingRecords(t)

	projection, err := dashboard.ProjectKanban(records, definition)
	require.NoError(t, err)

	// The union of all stage/status buckets equals the input set: no
	// duplicates, no omissions.
	flattened := projection.Records()
	require.Len(t, flattened, len(records))

	seen := make(map[string]bool)
	for _, record := range flattened {
		require.False(t, seen[record.ID])
		seen[record.ID] = true
	}
	for _, record := range records {
		require.True(t, seen[record.ID])
	}
}

func TestProjectKanbanStablePartition(t *testing.T) {
	definition := dashboard.TestingDefinition(t)

	var records []dashboard.Record
	for _, id := range []string{"PO-9", "PO-4", "PO-7"} {
		records = append(records, dashboard.Record{ID: id, Status: "Pending"})
	}

	projection, err := dashboard.ProjectKanban(records, definition)
	require.NoError(t, err)
	require.Len(t, projection.Stages, 1)
	require.Equal(t, []string{"PO-9", "PO-4", "PO-7"}, ids(projection.Stages[0].Lanes[0].Records))
}

func TestProjectKanbanOrphanStatus(t *testing.T) {
	definition := dashboard.TestingDefinition(t)
	records := []dashboard.Record{{ID: "PO-1", Status: "Limbo"}}

	_, err := dashboard.ProjectKanban(records, definition)
	require.ErrorIs(t, err, dashboard.ErrUnknownStatus)
}

func TestProjectKanbanEmptyInput(t *testing.T) {
	projection, err := dashboard.ProjectKanban(nil, dashboard.TestingDefinition(t))
	require.NoError(t, err)
	require.Empty(t, projection.Stages)
}

func TestProjectCalendar(t *testing.T) {
	records := dashboard.TestingRecords(t)

	projection := dashboard.ProjectCalendar(records, 2024, time.March, 3)
	require.Equal(t, 2024, projection.Year)
	require.Equal(t, time.March, projection.Month)
	require.Len(t, projection.Days, 3)
	require.Equal(t, 1, projection.Days[0].Day)
	require.Equal(t, 11, projection.Days[1].Day)
	require.Equal(t, 18, projection.Days[2].Day)
}

func TestProjectCalendarStructuralBucketing(t *testing.T) {
	// Day 1 and day 11 must land in distinct buckets; substring matching of
	// formatted dates would conflate them.
	records := []dashboard.Record{
		{ID: "PO-1", Status: "Draft", Date: dashboard.Date{Year: 2024, Month: time.March, Day: 1}},
		{ID: "PO-11", Status: "Draft", Date: dashboard.Date{Year: 2024, Month: time.March, Day: 11}},
	}

	projection := dashboard.ProjectCalendar(records, 2024, time.March, 3)
	require.Len(t, projection.Days, 2)
	require.Equal(t, []string{"PO-1"}, ids(projection.Days[0].Records))
	require.Equal(t, []string{"PO-11"}, ids(projection.Days[1].Records))
}

func TestProjectCalendarExcludesOtherMonths(t *testing.T) {
	records := []dashboard.Record{
		{ID: "PO-1", Status: "Draft", Date: dashboard.Date{Year: 2024, Month: time.March, Day: 5}},
		{ID: "PO-2", Status: "Draft", Date: dashboard.Date{Year: 2024, Month: time.April, Day: 5}},
		{ID: "PO-3", Status: "Draft", Date: dashboard.Date{Year: 2023, Month: time.March, Day: 5}},
		{ID: "PO-4", Status: "Draft"}, // no date at all
	}

	projection := dashboard.ProjectCalendar(records, 2024, time.March, 3)
	require.Len(t, projection.Days, 1)
	require.Equal(t, []string{"PO-1"}, ids(projection.Days[0].Records))
}

func TestProjectCalendarDisplayCap(t *testing.T) {
	var records []dashboard.Record
	for _, id := range []string{"PO-1", "PO-2", "PO-3", "PO-4", "PO-5"} {
		records = append(records, dashboard.Record{
			ID:     id,
			Status: "Draft",
			Date:   dashboard.Date{Year: 2024, Month: time.March, Day: 7},
		})
	}

	projection := dashboard.ProjectCalendar(records, 2024, time.March, 3)
	require.Len(t, projection.Days, 1)

	day := projection.Days[0]
	// The cap truncates the display; the overflow count is reported, the
	// records themselves stay in the table and kanban views.
	require.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, ids(day.Records))
	require.Equal(t, 2, day.Truncated)
}

func TestProjectGalleryIsTablePrefix(t *testing.T) {
	records := dashboard.TestingRecords(t)

	gallery := dashboard.ProjectGallery(records, 2)
	table := dashboard.ProjectTable(records, nil)

	require.Len(t, gallery.Cards, 2)
	require.Equal(t, 3, gallery.Total)
	require.Equal(t, table.Rows[:2], gallery.Cards)
}

func TestProjectGalleryShorterThanLimit(t *testing.T) {
	records := dashboard.TestingRecords(t)

	gallery := dashboard.ProjectGallery(records, 10)
	require.Len(t, gallery.Cards, 3)
	require.Equal(t, 3, gallery.Total)
}

func TestViewModeString(t *testing.T) {
	require.Equal(t, "table", dashboard.ViewTable.String())
	require.Equal(t, "kanban", dashboard.ViewKanban.String())
	require.Equal(t, "calendar", dashboard.ViewCalendar.String())
	require.Equal(t, "gallery", dashboard.ViewGallery.String())
}
