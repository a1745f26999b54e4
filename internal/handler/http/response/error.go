package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/timecard-backend-go/internal/domain/auth"
	"github.com/shiftwise/timecard-backend-go/internal/domain/employee"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Timecard submission errors
	case errors.Is(err, timecard.ErrFutureDate):
		BadRequest(w, "Work date is beyond the allowed future grace window", nil)
	case errors.Is(err, timecard.ErrInvalidInterval):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, timecard.ErrDuplicateSlot):
		Conflict(w, "An entry already exists for this date and start time")
	case errors.Is(err, timecard.ErrOverlappingEntry):
		Conflict(w, "Entry overlaps an existing entry for this date")

	// Timecard workflow errors
	case errors.Is(err, timecard.ErrMissingComment):
		BadRequest(w, "A comment is required when rejecting an entry", nil)
	case errors.Is(err, timecard.ErrEntryNotFound):
		NotFound(w, "Time card entry not found")
	case errors.Is(err, timecard.ErrAlreadyProcessed):
		Conflict(w, "Time card entry has already been approved or rejected")

	// Default: datastore connectivity and everything unexpected
	default:
		InternalServerError(w, "An unexpected error occurred, please try again later")
	}
}
