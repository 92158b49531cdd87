package commands

import (
	"context"

	"go.uber.org/zap"

	"eventdeck/application/ports"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/pkg/observability"
)

// DeleteEventCommand represents the request to delete an event. When
// DeleteCreator is set the creator's user record is removed afterwards.
type DeleteEventCommand struct {
	EventID       int
	CreatorID     int
	DeleteCreator bool
}

// Validate checks the command before the handler runs
func (cmd DeleteEventCommand) Validate() error {
	if cmd.EventID <= 0 {
		return pkgerrors.NewFieldValidationError("id", "event ID is required")
	}
	return nil
}

// DeleteEventHandler coordinates the delete-event mutation. A 404 from
// the store counts as success (the record is gone either way). The
// secondary creator deletion is best-effort: its failure is logged and
// never fails the mutation.
type DeleteEventHandler struct {
	store   ports.RemoteStore
	cache   ports.EntityCache
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewDeleteEventHandler creates a new handler instance
func NewDeleteEventHandler(
	store ports.RemoteStore,
	cache ports.EntityCache,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *DeleteEventHandler {
	return &DeleteEventHandler{store: store, cache: cache, logger: logger, metrics: metrics}
}

// Handle executes the delete event command
func (h *DeleteEventHandler) Handle(ctx context.Context, cmd DeleteEventCommand) error {
	m := newMutation("delete_event", h.logger, h.metrics)

	m.enter(PhaseValidating)
	if err := cmd.Validate(); err != nil {
		return m.fail(err)
	}

	m.enter(PhaseSubmitting)
	if err := h.store.DeleteEvent(ctx, cmd.EventID); err != nil {
		if !pkgerrors.IsNotFound(err) {
			return m.fail(err)
		}
		// Idempotent delete: the record was already gone.
		h.logger.Info("event already absent upstream",
			zap.String("mutationID", m.id),
			zap.Int("eventID", cmd.EventID),
		)
	}

	if cmd.DeleteCreator && cmd.CreatorID > 0 {
		if err := h.store.DeleteUser(ctx, cmd.CreatorID); err != nil {
			h.logger.Warn("creator deletion failed, event deletion stands",
				zap.String("mutationID", m.id),
				zap.Int("userID", cmd.CreatorID),
				zap.Error(err),
			)
		}
	}

	h.cache.InvalidateEvents()
	h.cache.InvalidateUsers()

	m.succeed()
	return nil
}
