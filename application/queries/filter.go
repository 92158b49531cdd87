package queries

import (
	"strings"

	"eventdeck/domain/core/entities"
)

// FilterCriteria is the current view state: free-text search plus a
// selected category id set. Zero value means "no filtering".
type FilterCriteria struct {
	SearchText  string
	CategoryIDs []int
}

// IsEmpty reports whether the criteria filter nothing
func (c FilterCriteria) IsEmpty() bool {
	return c.SearchText == "" && len(c.CategoryIDs) == 0
}

// FilterEvents derives the filtered view of an event collection.
//
// An event matches when the search text is empty or a case-insensitive
// substring of its title or description, AND the selected category set is
// empty or intersects the event's categories. Events with no categories
// are excluded whenever a category filter is active. The input order is
// preserved and the input slice is never mutated.
func FilterEvents(events []entities.Event, criteria FilterCriteria) []entities.Event {
	if criteria.IsEmpty() {
		out := make([]entities.Event, len(events))
		copy(out, events)
		return out
	}

	search := strings.ToLower(criteria.SearchText)

	out := make([]entities.Event, 0, len(events))
	for _, event := range events {
		if !matchesSearch(event, search) {
			continue
		}
		if len(criteria.CategoryIDs) > 0 && !event.CategoryIDs.IntersectsAny(criteria.CategoryIDs) {
			continue
		}
		out = append(out, event)
	}
	return out
}

func matchesSearch(event entities.Event, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(event.Title), search) ||
		strings.Contains(strings.ToLower(event.Description), search)
}
