package ports

import (
	"context"

	"eventdeck/domain/core/entities"
)

// RemoteStore is the port to the upstream REST store. One method per
// (entity, verb) pair the store exposes; implementations perform no
// retries, callers decide whether to retry.
type RemoteStore interface {
	// ListEvents retrieves the full events collection
	ListEvents(ctx context.Context) ([]entities.Event, error)

	// GetEvent retrieves a single event by id
	GetEvent(ctx context.Context, id int) (entities.Event, error)

	// CreateEvent submits a new event (id assigned upstream)
	CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error)

	// UpdateEvent replaces the full record (PUT semantics)
	UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error)

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, id int) error

	// ListCategories retrieves the read-only categories collection
	ListCategories(ctx context.Context) ([]entities.Category, error)

	// ListUsers retrieves the full users collection
	ListUsers(ctx context.Context) ([]entities.User, error)

	// CreateUser creates a user record with the given name
	CreateUser(ctx context.Context, name string) (entities.User, error)

	// DeleteUser removes a user record
	DeleteUser(ctx context.Context, id int) error
}

// EntityCache is the port to the per-entity collection cache. Reads
// return cached snapshots or fetch through the RemoteStore; concurrent
// fetches for one entity collapse into a single in-flight request.
type EntityCache interface {
	// Events returns the cached events collection, fetching if stale
	Events(ctx context.Context) ([]entities.Event, error)

	// Categories returns the cached categories collection, fetching if stale
	Categories(ctx context.Context) ([]entities.Category, error)

	// Users returns the cached users collection, fetching if stale
	Users(ctx context.Context) ([]entities.User, error)

	// InvalidateEvents marks the events entry stale
	InvalidateEvents()

	// InvalidateCategories marks the categories entry stale
	InvalidateCategories()

	// InvalidateUsers marks the users entry stale
	InvalidateUsers()

	// PutEvent optimistically updates one cached event in place,
	// avoiding a refetch after a successful update mutation
	PutEvent(event entities.Event)
}
