package validators

import (
	"strings"

	"eventdeck/domain/core/entities"
	pkgerrors "eventdeck/pkg/errors"
)

// EventValidator enforces the business rules a mutation must satisfy
// before anything is sent to the upstream store.
type EventValidator struct {
	maxTitleLength       int
	maxDescriptionLength int
}

// NewEventValidator creates a validator with the default limits
func NewEventValidator() *EventValidator {
	return &EventValidator{
		maxTitleLength:       200,
		maxDescriptionLength: 5000,
	}
}

// ValidateForSubmit checks a fully assembled event plus the rules that
// only apply at mutation time (at least one category selected, a creator
// name present).
func (v *EventValidator) ValidateForSubmit(event entities.Event, creatorName string) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if len(event.Title) > v.maxTitleLength {
		return pkgerrors.NewFieldValidationError("title", "title exceeds maximum length")
	}
	if len(event.Description) > v.maxDescriptionLength {
		return pkgerrors.NewFieldValidationError("description", "description exceeds maximum length")
	}
	if len(event.CategoryIDs) == 0 {
		return pkgerrors.NewFieldValidationError("categoryIds", "at least one category must be selected")
	}
	if strings.TrimSpace(creatorName) == "" {
		return pkgerrors.NewFieldValidationError("createdBy", "creator name is required")
	}
	return nil
}
