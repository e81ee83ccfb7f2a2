package dashboard

import "time"

// session is the single source of truth for one view session: filter, sort,
// selection and view mode. It is owned by the Engine and passed explicitly
// into projection calls; there is no component-local view state anywhere
// else.
type session struct {
	savedFilter  SavedFilter
	statusToggle FilterValue
	searchText   string

	sortColumn    ColumnKey
	sortDirection Direction

	selectedID string
	viewMode   ViewMode

	calendarYear  int
	calendarMonth time.Month
}

// SessionState is a read-only snapshot of the session for callers that need
// to render the current controls.
type SessionState struct {
	SavedFilter  SavedFilter
	StatusToggle FilterValue
	SearchText   string

	SortColumn    ColumnKey
	SortDirection Direction

	SelectedID string
	ViewMode   ViewMode

	CalendarYear  int
	CalendarMonth time.Month
}

func (s session) snapshot() SessionState {
	return SessionState{
		SavedFilter:   s.savedFilter,
		StatusToggle:  s.statusToggle,
		SearchText:    s.searchText,
		SortColumn:    s.sortColumn,
		SortDirection: s.sortDirection,
		SelectedID:    s.selectedID,
		ViewMode:      s.viewMode,
		CalendarYear:  s.calendarYear,
		CalendarMonth: s.calendarMonth,
	}
}
