package queries

import (
	"context"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
)

// ListUsersQuery asks for the users collection
type ListUsersQuery struct{}

// Validate validates the ListUsersQuery
func (q ListUsersQuery) Validate() error { return nil }

// ListUsersHandler serves ListUsersQuery from the entity cache
type ListUsersHandler struct {
	cache ports.EntityCache
}

// NewListUsersHandler creates a new handler instance
func NewListUsersHandler(cache ports.EntityCache) *ListUsersHandler {
	return &ListUsersHandler{cache: cache}
}

// Handle executes the query
func (h *ListUsersHandler) Handle(ctx context.Context, _ ListUsersQuery) ([]entities.User, error) {
	return h.cache.Users(ctx)
}
