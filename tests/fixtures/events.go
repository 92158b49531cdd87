package fixtures

import (
	"time"

	"eventdeck/domain/core/entities"
)

// EventBuilder assembles event fixtures with sensible defaults
type EventBuilder struct {
	event entities.Event
}

// NewEventBuilder creates a builder seeded with a valid event
func NewEventBuilder() *EventBuilder {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	return &EventBuilder{
		event: entities.Event{
			ID:          1,
			Title:       "Jazz Night",
			Description: "An evening of live jazz",
			Location:    "Blue Note",
			StartTime:   start,
			EndTime:     start.Add(3 * time.Hour),
			CreatedBy:   1,
			CategoryIDs: entities.CategoryIDs{1},
		},
	}
}

func (b *EventBuilder) WithID(id int) *EventBuilder {
	b.event.ID = id
	return b
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) WithDescription(description string) *EventBuilder {
	b.event.Description = description
	return b
}

func (b *EventBuilder) WithLocation(location string) *EventBuilder {
	b.event.Location = location
	return b
}

func (b *EventBuilder) WithTimes(start, end time.Time) *EventBuilder {
	b.event.StartTime = start
	b.event.EndTime = end
	return b
}

func (b *EventBuilder) WithCreatedBy(userID int) *EventBuilder {
	b.event.CreatedBy = userID
	return b
}

func (b *EventBuilder) WithCategories(ids ...int) *EventBuilder {
	b.event.CategoryIDs = entities.CategoryIDs(ids)
	return b
}

// Build returns the assembled event
func (b *EventBuilder) Build() entities.Event {
	return b.event
}

// Category returns a category fixture
func Category(id int, name string) entities.Category {
	return entities.Category{ID: id, Name: name}
}

// User returns a user fixture
func User(id int, name string) entities.User {
	return entities.User{ID: id, Name: name}
}
