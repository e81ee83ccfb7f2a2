package dashboard

import "time"

// ViewMode selects one of the four presentations of the active record set.
// All modes are freely reachable from one another; the initial mode is Table.
type ViewMode int

const (
	ViewTable    ViewMode = 0
	ViewKanban   ViewMode = 1
	ViewCalendar ViewMode = 2
	ViewGallery  ViewMode = 3
)

func (v ViewMode) String() string {
	switch v {
	case ViewTable:
		return "table"
	case ViewKanban:
		return "kanban"
	case ViewCalendar:
		return "calendar"
	case ViewGallery:
		return "gallery"
	default:
		return ""
	}
}

type TableColumn struct {
	Key   ColumnKey
	Title string
}

// TableProjection is the identity projection: the filtered+sorted records
// verbatim as rows.
type TableProjection struct {
	Columns []TableColumn
	Rows    []Record
}

// StatusLane is one status' records within a kanban stage column.
type StatusLane struct {
	Status  Status
	Label   string
	Color   string
	Records []Record
}

type StageColumn struct {
	Stage StageGroup
	Lanes []StatusLane
}

// KanbanProjection partitions the record set by stage group in
// workflow-declared order, then by status within each stage. The partition is
// stable: records keep the relative order they had in the filtered+sorted set.
type KanbanProjection struct {
	Stages []StageColumn
}

// Records flattens the projection back into a single slice, stage by stage.
func (p KanbanProjection) Records() []Record {
	var out []Record
	for _, stage := range p.Stages {
		for _, lane := range stage.Lanes {
			out = append(out, lane.Records...)
		}
	}

	return out
}

type CalendarDay struct {
	Day     int
	Records []Record
	// Truncated is how many of the day's records fall beyond the display cap.
	// They are not dropped; they remain visible in the table and kanban views.
	Truncated int
}

// CalendarProjection buckets records into the days of a single rendered
// month. Only days with at least one record are present.
type CalendarProjection struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// GalleryProjection is strictly the head slice of the table projection.
type GalleryProjection struct {
	Cards []Record
	// Total is the size of the full filtered set the cards were cut from.
	Total int
}

// ProjectTable returns the records verbatim with the given display columns.
func ProjectTable(records []Record, columns []TableColumn) TableProjection {
	return TableProjection{
		Columns: columns,
		Rows:    records,
	}
}

// ProjectKanban partitions records by stage then status. A status with no
// records is omitted from its stage and a stage with no populated statuses is
// omitted entirely. A record whose status is not in the definition surfaces
// as ErrUnknownStatus since an orphan status is a data-integrity error.
func ProjectKanban(records []Record, definition *WorkflowDefinition) (KanbanProjection, error) {
	byStatus := make(map[Status][]Record)
	for _, record := range records {
		if _, err := definition.Descriptor(record.Status); err != nil {
			return KanbanProjection{}, err
		}

		byStatus[record.Status] = append(byStatus[record.Status], record)
	}

	stageLanes := make(map[StageGroup][]StatusLane)
	for _, descriptor := range definition.Statuses() {
		matched := byStatus[descriptor.Code]
		if len(matched) == 0 {
			continue
		}

		stageLanes[descriptor.StageGroup] = append(stageLanes[descriptor.StageGroup], StatusLane{
			Status:  descriptor.Code,
			Label:   descriptor.Label,
			Color:   descriptor.Color,
			Records: matched,
		})
	}

	var projection KanbanProjection
	for _, stage := range definition.StageGroups() {
		lanes := stageLanes[stage]
		if len(lanes) == 0 {
			continue
		}

		projection.Stages = append(projection.Stages, StageColumn{
			Stage: stage,
			Lanes: lanes,
		})
	}

	return projection, nil
}

// ProjectCalendar buckets records into the days of the given month by
// structural date equality. displayCap limits how many records a day shows;
// the overflow is reported via Truncated, never discarded. Records without a
// date, or dated outside the month, simply do not appear.
func ProjectCalendar(records []Record, year int, month time.Month, displayCap int) CalendarProjection {
	byDay := make(map[int][]Record)
	for _, record := range records {
		if record.Date.IsZero() {
			continue
		}

		if record.Date.Year != year || record.Date.Month != month {
			continue
		}

		byDay[record.Date.Day] = append(byDay[record.Date.Day], record)
	}

	projection := CalendarProjection{
		Year:  year,
		Month: month,
	}

	daysIn := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysIn; day++ {
		matched, ok := byDay[day]
		if !ok {
			continue
		}

		truncated := 0
		if displayCap > 0 && len(matched) > displayCap {
			truncated = len(matched) - displayCap
			matched = matched[:displayCap]
		}

		projection.Days = append(projection.Days, CalendarDay{
			Day:       day,
			Records:   matched,
			Truncated: truncated,
		})
	}

	return projection
}

// ProjectGallery returns the first limit records unchanged.
func ProjectGallery(records []Record, limit int) GalleryProjection {
	cards := records
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}

	return GalleryProjection{
		Cards: cards,
		Total: len(records),
	}
}
