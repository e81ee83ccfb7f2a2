package dashboard

import "strings"

// SavedFilter is a named, reusable predicate selecting records by status.
// An empty status set is the identity predicate and matches everything.
type SavedFilter struct {
	Name     string
	Statuses []Status
}

// FilterAll returns the identity saved filter.
func FilterAll() SavedFilter {
	return SavedFilter{Name: "All"}
}

// NewSavedFilter returns a saved filter matching records whose status is a
// member of the given set.
func NewSavedFilter(name string, statuses ...Status) SavedFilter {
	return SavedFilter{Name: name, Statuses: statuses}
}

func (f SavedFilter) Matches(status Status) bool {
	if len(f.Statuses) == 0 {
		return true
	}

	for _, s := range f.Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// FilterValue is an optional exact-status condition layered conjunctively on
// top of the saved filter. Enabled distinguishes "no toggle" from a toggle on
// an empty value.
type FilterValue struct {
	Enabled bool
	Value   Status
}

func makeFilterValue(status Status) FilterValue {
	return FilterValue{
		Enabled: true,
		Value:   status,
	}
}

// Toggle flips the value like a binary switch: toggling the value that is
// already active clears it, toggling a different value replaces it.
func (f FilterValue) Toggle(status Status) FilterValue {
	if f.Enabled && f.Value == status {
		return FilterValue{}
	}

	return makeFilterValue(status)
}

// ApplyFilter narrows records to those matched by the saved filter, the
// status toggle and the free-text search, in that order. The relative order
// of the input is preserved and an empty result is a valid outcome, never an
// error.
func ApplyFilter(records []Record, filter SavedFilter, toggle FilterValue, searchText string) []Record {
	search := strings.ToLower(strings.TrimSpace(searchText))

	out := make([]Record, 0, len(records))
	for _, record := range records {
		if !filter.Matches(record.Status) {
			continue
		}

		if toggle.Enabled && record.Status != toggle.Value {
			continue
		}

		if search != "" && !matchesSearch(record, search) {
			continue
		}

		out = append(out, record)
	}

	return out
}

// matchesSearch matches the lowercased search term as a substring of the
// record's id and counterparty name.
func matchesSearch(record Record, search string) bool {
	if strings.Contains(strings.ToLower(record.ID), search) {
		return true
	}

	return strings.Contains(strings.ToLower(record.CounterpartyName), search)
}
