package report

import (
	"github.com/shiftwise/timecard-backend-go/internal/pkg/validator"
)

type AnomalyKind string

const (
	// AnomalyMissingDay flags a working day in the period with no entry
	// of any status.
	AnomalyMissingDay AnomalyKind = "missing_day"
	// AnomalyExcessHours flags a date whose approved hours exceed the
	// configured daily cap.
	AnomalyExcessHours AnomalyKind = "excess_hours"
)

type Anomaly struct {
	Kind  AnomalyKind `json:"kind"`
	Date  string      `json:"date"`
	Hours float64     `json:"hours,omitempty"`
}

// PeriodSummary aggregates one employee's entries over a date range.
type PeriodSummary struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	ApprovedHours float64 `json:"approved_hours"`
	PendingHours  float64 `json:"pending_hours"`
	RejectedHours float64 `json:"rejected_hours"`

	// Distinct work dates with at least one approved entry.
	ApprovedDays int `json:"approved_days"`

	Anomalies []Anomaly `json:"anomalies"`
}

type PeriodSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *PeriodSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
