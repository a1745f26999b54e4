package timecard

import (
	"time"
)

type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusRejected EntryStatus = "rejected"
)

// Entry is a single time-card submission: one employee, one work date,
// one worked interval. Entries are never physically deleted; a decided
// entry keeps its decision fields for audit.
type Entry struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	StartTime  time.Time
	EndTime    time.Time
	Status     EntryStatus

	SubmittedAt time.Time
	DecidedAt   *time.Time
	DecidedBy   *string
	Comment     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for admin views
	EmployeeName *string
}

// Hours returns the worked duration of the entry in hours.
func (e Entry) Hours() float64 {
	return e.EndTime.Sub(e.StartTime).Hours()
}

// Decided reports whether the entry has left the pending state.
func (e Entry) Decided() bool {
	return e.Status != StatusPending
}

// Overlaps reports whether two half-open intervals [start, end) touch.
func (e Entry) Overlaps(other Entry) bool {
	return e.StartTime.Before(other.EndTime) && other.StartTime.Before(e.EndTime)
}
