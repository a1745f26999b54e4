package timecard

import (
	"time"

	"github.com/shiftwise/timecard-backend-go/internal/pkg/validator"
)

// SubmitEntryRequest is the employee-facing submission payload. The
// worked interval is a date plus two clock times on that date.
type SubmitEntryRequest struct {
	WorkDate  string `json:"work_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *SubmitEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "must be a time in HH:MM format",
		})
	}
	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "must be a time in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntry builds the candidate entry for an employee. Validate must
// have passed first.
func (r *SubmitEntryRequest) ToEntry(employeeID string) Entry {
	date, _ := time.Parse("2006-01-02", r.WorkDate)
	start, _ := time.Parse("15:04", r.StartTime)
	end, _ := time.Parse("15:04", r.EndTime)

	return Entry{
		EmployeeID: employeeID,
		WorkDate:   date,
		StartTime:  onDate(date, start),
		EndTime:    onDate(date, end),
		Status:     StatusPending,
	}
}

func onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// RejectEntryRequest carries the admin's rejection comment.
type RejectEntryRequest struct {
	Comment string `json:"comment"`
}

// EntryResponse is the wire representation of an entry.
type EntryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Hours        float64 `json:"hours"`
	Status       string  `json:"status"`
	SubmittedAt  string  `json:"submitted_at"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	Comment      *string `json:"comment,omitempty"`
}

func NewEntryResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		WorkDate:     e.WorkDate.Format("2006-01-02"),
		StartTime:    e.StartTime.Format("15:04"),
		EndTime:      e.EndTime.Format("15:04"),
		Hours:        e.Hours(),
		Status:       string(e.Status),
		SubmittedAt:  e.SubmittedAt.Format(time.RFC3339),
		DecidedBy:    e.DecidedBy,
		Comment:      e.Comment,
	}
	if e.DecidedAt != nil {
		decidedAt := e.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}

func NewEntryResponses(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewEntryResponse(e))
	}
	return responses
}
