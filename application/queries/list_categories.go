package queries

import (
	"context"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
)

// ListCategoriesQuery asks for the read-only categories collection
type ListCategoriesQuery struct{}

// Validate validates the ListCategoriesQuery
func (q ListCategoriesQuery) Validate() error { return nil }

// ListCategoriesHandler serves ListCategoriesQuery from the entity cache
type ListCategoriesHandler struct {
	cache ports.EntityCache
}

// NewListCategoriesHandler creates a new handler instance
func NewListCategoriesHandler(cache ports.EntityCache) *ListCategoriesHandler {
	return &ListCategoriesHandler{cache: cache}
}

// Handle executes the query
func (h *ListCategoriesHandler) Handle(ctx context.Context, _ ListCategoriesQuery) ([]entities.Category, error) {
	return h.cache.Categories(ctx)
}
