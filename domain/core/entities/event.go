package entities

import (
	"bytes"
	"encoding/json"
	"time"

	pkgerrors "eventdeck/pkg/errors"
)

// Event is a record in the upstream store's /events collection.
// Instants are ISO-8601 on the wire; the store assigns integer ids.
type Event struct {
	ID          int         `json:"id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Location    string      `json:"location"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	CreatedBy   int         `json:"createdBy"`
	CategoryIDs CategoryIDs `json:"categoryIds"`
}

// CategoryIDs is the event's category id set. Records in the wild carry
// null, missing, or malformed values here; those all decode to an empty
// set so one bad record never poisons a whole collection fetch.
type CategoryIDs []int

// UnmarshalJSON decodes leniently: anything that is not an array of
// integers becomes an empty set.
func (c *CategoryIDs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = nil
		return nil
	}

	var ids []int
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		*c = nil
		return nil
	}
	*c = ids
	return nil
}

// Contains reports whether id is in the set
func (c CategoryIDs) Contains(id int) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// IntersectsAny reports whether the set shares any id with ids
func (c CategoryIDs) IntersectsAny(ids []int) bool {
	for _, id := range ids {
		if c.Contains(id) {
			return true
		}
	}
	return false
}

// Validate enforces the event's record-level invariants
func (e Event) Validate() error {
	if e.Title == "" {
		return pkgerrors.NewFieldValidationError("title", "title is required")
	}
	if e.StartTime.IsZero() {
		return pkgerrors.NewFieldValidationError("startTime", "startTime is required")
	}
	if e.EndTime.IsZero() {
		return pkgerrors.NewFieldValidationError("endTime", "endTime is required")
	}
	if !e.EndTime.After(e.StartTime) {
		return pkgerrors.NewFieldValidationError("endTime", "endTime must be after startTime")
	}
	return nil
}
