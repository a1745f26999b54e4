package timecard

import (
	"context"
	"time"
)

// Service - the entry submission and approval workflow
type Service interface {
	// Submit validates and persists a new pending entry for the
	// employee taken from the session context.
	Submit(ctx context.Context, employeeID string, req SubmitEntryRequest) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)

	// ListPending returns all entries awaiting an admin decision.
	ListPending(ctx context.Context) ([]Entry, error)

	// Approve transitions a pending entry to approved and publishes a
	// decision event. Fails with ErrAlreadyProcessed if another admin
	// decided first.
	Approve(ctx context.Context, id, decidedBy string) (Entry, error)

	// Reject transitions a pending entry to rejected. The comment is
	// mandatory; ErrMissingComment is returned otherwise.
	Reject(ctx context.Context, id, decidedBy, comment string) (Entry, error)
}
