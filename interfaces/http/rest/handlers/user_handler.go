package handlers

import (
	"net/http"

	"eventdeck/application/queries"
	"eventdeck/pkg/common"
	pkgerrors "eventdeck/pkg/errors"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	listUsers *queries.ListUsersHandler
	errors    *pkgerrors.ErrorHandler
}

// NewUserHandler creates a new user handler
func NewUserHandler(listUsers *queries.ListUsersHandler, errors *pkgerrors.ErrorHandler) *UserHandler {
	return &UserHandler{listUsers: listUsers, errors: errors}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUsers.Handle(r.Context(), queries.ListUsersQuery{})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, users)
}
