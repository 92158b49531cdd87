package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"eventdeck/application/commands"
	"eventdeck/application/queries"
	"eventdeck/pkg/common"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/pkg/utils"
)

const maxBodyBytes = 1 << 20

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	listEvents  *queries.ListEventsHandler
	getEvent    *queries.GetEventHandler
	createEvent *commands.CreateEventHandler
	updateEvent *commands.UpdateEventHandler
	deleteEvent *commands.DeleteEventHandler
	errors      *pkgerrors.ErrorHandler
	purgeUsers  bool
	logger      *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(
	listEvents *queries.ListEventsHandler,
	getEvent *queries.GetEventHandler,
	createEvent *commands.CreateEventHandler,
	updateEvent *commands.UpdateEventHandler,
	deleteEvent *commands.DeleteEventHandler,
	errors *pkgerrors.ErrorHandler,
	purgeUsers bool,
	logger *zap.Logger,
) *EventHandler {
	return &EventHandler{
		listEvents:  listEvents,
		getEvent:    getEvent,
		createEvent: createEvent,
		updateEvent: updateEvent,
		deleteEvent: deleteEvent,
		errors:      errors,
		purgeUsers:  purgeUsers,
		logger:      logger,
	}
}

// EventRequest represents the request body for creating or updating an event
type EventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=5000"`
	Image       string    `json:"image,omitempty" validate:"omitempty,url"`
	Location    string    `json:"location" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	CreatedBy   string    `json:"createdBy" validate:"required"`
	CategoryIDs []int     `json:"categoryIds" validate:"required,min=1"`
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	categoryIDs, err := parseCategoryFilter(r.URL.Query().Get("categories"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	query := queries.ListEventsQuery{
		Search:      r.URL.Query().Get("search"),
		CategoryIDs: categoryIDs,
	}

	result, err := h.listEvents.Handle(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetEvent handles GET /events/{eventID}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseEventID(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	view, err := h.getEvent.Handle(r.Context(), queries.GetEventQuery{EventID: eventID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	cmd := commands.CreateEventCommand{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   req.CreatedBy,
		CategoryIDs: req.CategoryIDs,
	}

	created, err := h.createEvent.Handle(r.Context(), cmd)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// UpdateEvent handles PUT /events/{eventID}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseEventID(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req EventRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	cmd := commands.UpdateEventCommand{
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   req.CreatedBy,
		CategoryIDs: req.CategoryIDs,
	}

	updated, err := h.updateEvent.Handle(r.Context(), cmd)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /events/{eventID}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseEventID(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	// The creator id is looked up before deleting so the follow-up user
	// purge knows who to remove. A missing event is fine, deletion
	// tolerates records that are already gone.
	creatorID := 0
	view, err := h.getEvent.Handle(r.Context(), queries.GetEventQuery{EventID: eventID})
	switch {
	case err == nil:
		creatorID = view.CreatedBy
	case pkgerrors.IsNotFound(err):
		h.logger.Debug("event not found before delete", zap.Int("eventID", eventID))
	default:
		h.errors.Handle(w, r, err)
		return
	}

	cmd := commands.DeleteEventCommand{
		EventID:       eventID,
		CreatorID:     creatorID,
		DeleteCreator: h.purgeFlag(r),
	}

	if err := h.deleteEvent.Handle(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

// purgeFlag resolves the per-request creator purge override, falling
// back to the configured default
func (h *EventHandler) purgeFlag(r *http.Request) bool {
	raw := r.URL.Query().Get("purge_creator")
	if raw == "" {
		return h.purgeUsers
	}
	flag, err := strconv.ParseBool(raw)
	if err != nil {
		return h.purgeUsers
	}
	return flag
}

func parseEventID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "eventID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.NewFieldValidationError("id", "event ID must be a positive integer")
	}
	return id, nil
}

func parseCategoryFilter(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, pkgerrors.NewFieldValidationError("categories", "categories must be a comma-separated list of numeric ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
