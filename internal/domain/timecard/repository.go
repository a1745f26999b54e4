package timecard

import (
	"context"
	"time"
)

// Repository - interface for the time_card_entries table
type Repository interface {
	// Create persists a pending entry and returns it with its assigned
	// id and timestamps. The storage layer enforces the duplicate-slot
	// and overlap invariants and returns ErrDuplicateSlot or
	// ErrOverlappingEntry when a racing submission got there first.
	Create(ctx context.Context, entry Entry) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// ListByEmployeeAndPeriod returns the employee's entries with
	// work_date in [start, end], ordered by work_date then start_time
	// ascending.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)

	// ListByStatus returns entries in the given status across all
	// employees, ordered by work_date then start_time ascending, with
	// employee names joined for the admin review view.
	ListByStatus(ctx context.Context, status EntryStatus) ([]Entry, error)

	// UpdateStatus transitions a pending entry to a terminal status in
	// a single atomic statement. Returns ErrEntryNotFound for an
	// unknown id and ErrAlreadyProcessed when the entry has left the
	// pending state, so of two racing decisions exactly one wins.
	UpdateStatus(ctx context.Context, id string, status EntryStatus, decidedBy string, comment *string) (Entry, error)
}
