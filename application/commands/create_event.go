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

// CreateEventCommand represents the request to create a new event.
// CreatedBy carries the creator's display name; the handler resolves it
// to a user id before submitting.
type CreateEventCommand struct {
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
func (cmd CreateEventCommand) Validate() error {
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

// event assembles the record to submit; the creator id is filled in
// after resolution
func (cmd CreateEventCommand) event() entities.Event {
	return entities.Event{
		Title:       cmd.Title,
		Description: cmd.Description,
		Image:       cmd.Image,
		Location:    cmd.Location,
		StartTime:   cmd.StartTime,
		EndTime:     cmd.EndTime,
		CategoryIDs: cmd.CategoryIDs,
	}
}

// CreateEventHandler coordinates the create-event mutation:
// validate, resolve the creator, submit, invalidate the events cache.
type CreateEventHandler struct {
	store     ports.RemoteStore
	cache     ports.EntityCache
	users     *UserResolver
	validator *validators.EventValidator
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// NewCreateEventHandler creates a new handler instance
func NewCreateEventHandler(
	store ports.RemoteStore,
	cache ports.EntityCache,
	users *UserResolver,
	validator *validators.EventValidator,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *CreateEventHandler {
	return &CreateEventHandler{
		store:     store,
		cache:     cache,
		users:     users,
		validator: validator,
		logger:    logger,
		metrics:   metrics,
	}
}

// Handle executes the create event command
func (h *CreateEventHandler) Handle(ctx context.Context, cmd CreateEventCommand) (*entities.Event, error) {
	m := newMutation("create_event", h.logger, h.metrics)

	// All validation happens before anything touches the network.
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
	created, err := h.store.CreateEvent(ctx, event)
	if err != nil {
		return nil, m.fail(err)
	}

	// Invalidation strictly follows the successful write.
	h.cache.InvalidateEvents()

	m.succeed()
	return &created, nil
}
