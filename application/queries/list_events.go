package queries

import (
	"context"
	"strconv"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"

	"go.uber.org/zap"
)

// ListEventsQuery asks for the event collection filtered by the current
// view criteria.
type ListEventsQuery struct {
	Search      string
	CategoryIDs []int
}

// Validate validates the ListEventsQuery
func (q ListEventsQuery) Validate() error {
	// Empty criteria are the identity filter; nothing to reject.
	return nil
}

// EventView is an event decorated with the display names the view layer
// renders alongside it.
type EventView struct {
	entities.Event
	CategoryNames []string `json:"categoryNames"`
	CreatedByName string   `json:"createdByName"`
}

// ListEventsResult is the filtered, decorated event collection
type ListEventsResult struct {
	Events []EventView `json:"events"`
	Total  int         `json:"total"`
}

// ListEventsHandler serves ListEventsQuery from the entity cache
type ListEventsHandler struct {
	cache  ports.EntityCache
	logger *zap.Logger
}

// NewListEventsHandler creates a new handler instance
func NewListEventsHandler(cache ports.EntityCache, logger *zap.Logger) *ListEventsHandler {
	return &ListEventsHandler{cache: cache, logger: logger}
}

// Handle executes the query
func (h *ListEventsHandler) Handle(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.cache.Events(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterEvents(events, FilterCriteria{
		SearchText:  query.Search,
		CategoryIDs: query.CategoryIDs,
	})

	// Name lookups are best-effort: a failed categories or users fetch
	// degrades the decoration, not the listing itself.
	names := h.nameResolver(ctx)

	views := make([]EventView, 0, len(filtered))
	for _, event := range filtered {
		views = append(views, names.decorate(event))
	}

	return &ListEventsResult{Events: views, Total: len(views)}, nil
}

// nameResolver loads the category and user collections once per query
func (h *ListEventsHandler) nameResolver(ctx context.Context) *nameResolver {
	r := &nameResolver{}

	categories, err := h.cache.Categories(ctx)
	if err != nil {
		h.logger.Warn("categories unavailable, rendering ids", zap.Error(err))
	} else {
		r.categories = categories
	}

	users, err := h.cache.Users(ctx)
	if err != nil {
		h.logger.Warn("users unavailable, rendering placeholder creators", zap.Error(err))
	} else {
		r.users = users
	}

	return r
}

// nameResolver maps ids to display names with the view layer's fallbacks
type nameResolver struct {
	categories []entities.Category
	users      []entities.User
}

func (r *nameResolver) decorate(event entities.Event) EventView {
	view := EventView{Event: event, CreatedByName: r.userName(event.CreatedBy)}
	for _, id := range event.CategoryIDs {
		view.CategoryNames = append(view.CategoryNames, r.categoryName(id))
	}
	return view
}

func (r *nameResolver) categoryName(id int) string {
	for _, c := range r.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Category " + strconv.Itoa(id)
}

func (r *nameResolver) userName(id int) string {
	for _, u := range r.users {
		if u.ID == id {
			return u.Name
		}
	}
	return "Unknown User"
}
