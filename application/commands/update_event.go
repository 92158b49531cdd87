package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
	"eventdeck/domain/core/validators"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/pkg/observability"
)

// UpdateEventCommand represents the request to replace an event record.
// PUT semantics: every field is submitted even when unchanged.
type UpdateEventCommand struct {
	EventID     int
	Title       string
	Description string
	Image       string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	CreatedBy   string
	CategoryIDs []int
}

// Validate checks the fields that must be present before the handler
// does anything else
func (cmd UpdateEventCommand) Validate() error {
	if cmd.EventID <= 0 {
		return pkgerrors.NewFieldValidationError("id", "event ID is required")
	}
	if cmd.Title == "" {
		return pkgerrors.NewFieldValidationError("title", "title is required")
	}
	if cmd.CreatedBy == "" {
		return pkgerrors.NewFieldValidationError("createdBy", "creator name is required")
	}
	if cmd.StartTime.IsZero() || cmd.EndTime.IsZero() {
		return pkgerrors.NewFieldValidationError("startTime", "startTime and endTime are required")
	}
	return nil
}

func (cmd UpdateEventCommand) event() entities.Event {
	return entities.Event{
		ID:          cmd.EventID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Image:       cmd.Image,
		Location:    cmd.Location,
		StartTime:   cmd.StartTime,
		EndTime:     cmd.EndTime,
		CategoryIDs: cmd.CategoryIDs,
	}
}

// UpdateEventHandler coordinates the update-event mutation. The creator
// name is re-resolved on every update (an edit may hand the event to a
// new or existing user), and the cache entry is rewritten in place on
// success instead of forcing a collection refetch.
type UpdateEventHandler struct {
	store     ports.RemoteStore
	cache     ports.EntityCache
	users     *UserResolver
	validator *validators.EventValidator
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// NewUpdateEventHandler creates a new handler instance
func NewUpdateEventHandler(
	store ports.RemoteStore,
	cache ports.EntityCache,
	users *UserResolver,
	validator *validators.EventValidator,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *UpdateEventHandler {
	return &UpdateEventHandler{
		store:     store,
		cache:     cache,
		users:     users,
		validator: validator,
		logger:    logger,
		metrics:   metrics,
	}
}

// Handle executes the update event command
func (h *UpdateEventHandler) Handle(ctx context.Context, cmd UpdateEventCommand) (*entities.Event, error) {
	m := newMutation("update_event", h.logger, h.metrics)

	m.enter(PhaseValidating)
	if err := cmd.Validate(); err != nil {
		return nil, m.fail(err)
	}
	event := cmd.event()
	if err := h.validator.ValidateForSubmit(event, cmd.CreatedBy); err != nil {
		return nil, m.fail(err)
	}

	m.enter(PhaseResolving)
	creator, err := h.users.Resolve(ctx, cmd.CreatedBy)
	if err != nil {
		return nil, m.fail(pkgerrors.Wrap(err, "resolving creator"))
	}
	event.CreatedBy = creator.ID

	m.enter(PhaseSubmitting)
	updated, err := h.store.UpdateEvent(ctx, event)
	if err != nil {
		return nil, m.fail(err)
	}

	// Optimistic in-place update saves the round trip a full
	// invalidation would cost.
	h.cache.PutEvent(updated)

	m.succeed()
	return &updated, nil
}
