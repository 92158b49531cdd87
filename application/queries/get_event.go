package queries

import (
	"context"

	"go.uber.org/zap"

	"eventdeck/application/ports"
	pkgerrors "eventdeck/pkg/errors"
)

// GetEventQuery asks for a single event by id
type GetEventQuery struct {
	EventID int
}

// Validate validates the GetEventQuery
func (q GetEventQuery) Validate() error {
	if q.EventID <= 0 {
		return pkgerrors.NewFieldValidationError("id", "event ID is required")
	}
	return nil
}

// GetEventHandler serves GetEventQuery. Single-record reads go straight
// to the store (the cache holds collections); decoration reuses the
// cached categories and users.
type GetEventHandler struct {
	store  ports.RemoteStore
	cache  ports.EntityCache
	logger *zap.Logger
}

// NewGetEventHandler creates a new handler instance
func NewGetEventHandler(store ports.RemoteStore, cache ports.EntityCache, logger *zap.Logger) *GetEventHandler {
	return &GetEventHandler{store: store, cache: cache, logger: logger}
}

// Handle executes the query
func (h *GetEventHandler) Handle(ctx context.Context, query GetEventQuery) (*EventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	event, err := h.store.GetEvent(ctx, query.EventID)
	if err != nil {
		return nil, err
	}

	names := &nameResolver{}
	if categories, err := h.cache.Categories(ctx); err == nil {
		names.categories = categories
	} else {
		h.logger.Warn("categories unavailable, rendering ids", zap.Error(err))
	}
	if users, err := h.cache.Users(ctx); err == nil {
		names.users = users
	} else {
		h.logger.Warn("users unavailable, rendering placeholder creator", zap.Error(err))
	}

	view := names.decorate(event)
	return &view, nil
}
