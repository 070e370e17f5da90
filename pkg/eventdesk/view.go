package eventdesk

import (
	"fmt"
	"sort"
)

// SortField selects which event field the derived view is ordered by.
type SortField string

// Valid sort fields.
const (
	SortByName     SortField = "name"
	SortByDate     SortField = "date"
	SortByCategory SortField = "category"
)

// IsValid reports whether f is one of the declared sort fields.
func (f SortField) IsValid() bool {
	switch f {
	case SortByName, SortByDate, SortByCategory:
		return true
	}
	return false
}

// ParseSortField converts a string tag to a SortField.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortField, s)
	}
	return f, nil
}

// FilterCategory selects which events the derived view keeps.
// FilterAll keeps everything; the rest match a single category.
type FilterCategory string

// Valid filter categories.
const (
	FilterAll      FilterCategory = "all"
	FilterWork     FilterCategory = "work"
	FilterPersonal FilterCategory = "personal"
	FilterOther    FilterCategory = "other"
)

// IsValid reports whether f is one of the declared filters.
func (f FilterCategory) IsValid() bool {
	return f == FilterAll || Category(f).IsValid()
}

// ParseFilterCategory converts a string tag to a FilterCategory.
func ParseFilterCategory(s string) (FilterCategory, error) {
	f := FilterCategory(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
	return f, nil
}

// DeriveView computes the display order of a collection: filter by
// category, then stable-sort ascending on the chosen field. The input
// slice is never modified; the result is always a fresh slice.
//
// Comparison is plain string ordering on the field's value. For dates
// that matches chronological order because DateLayout is zero-padded.
func DeriveView(events []Event, sortField SortField, filter FilterCategory) []Event {
	view := make([]Event, 0, len(events))
	for _, e := range events {
		if filter != FilterAll && e.Category != Category(filter) {
			continue
		}
		view = append(view, e)
	}

	sort.SliceStable(view, func(i, j int) bool {
		return sortKey(view[i], sortField) < sortKey(view[j], sortField)
	})
	return view
}

// sortKey returns the string the view is ordered by for one event.
func sortKey(e Event, f SortField) string {
	switch f {
	case SortByDate:
		return e.Date
	case SortByCategory:
		return string(e.Category)
	default:
		return e.Name
	}
}
