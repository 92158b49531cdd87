package handlers

import (
	"net/http"

	"eventdeck/application/queries"
	"eventdeck/pkg/common"
	pkgerrors "eventdeck/pkg/errors"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	listCategories *queries.ListCategoriesHandler
	errors         *pkgerrors.ErrorHandler
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(listCategories *queries.ListCategoriesHandler, errors *pkgerrors.ErrorHandler) *CategoryHandler {
	return &CategoryHandler{listCategories: listCategories, errors: errors}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Handle(r.Context(), queries.ListCategoriesQuery{})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, categories)
}
