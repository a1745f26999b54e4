package timecard

import "errors"

// Validation errors returned before (or by) persistence.
var (
	ErrFutureDate       = errors.New("work date is beyond the allowed future grace window")
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrDuplicateSlot    = errors.New("an entry already exists for this date and start time")
	ErrOverlappingEntry = errors.New("entry overlaps an existing entry for this date")
	ErrMissingComment   = errors.New("a comment is required when rejecting an entry")
)

// Workflow errors.
var (
	ErrEntryNotFound    = errors.New("time card entry not found")
	ErrAlreadyProcessed = errors.New("time card entry has already been approved or rejected")
)
