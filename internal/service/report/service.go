package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/timecard-backend-go/internal/domain/report"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
)

type service struct {
	entryRepo timecard.Repository
	rules     timecard.Rules
}

func NewReportService(entryRepo timecard.Repository, rules timecard.Rules) report.Service {
	return &service{
		entryRepo: entryRepo,
		rules:     rules,
	}
}

func (s *service) Summarize(ctx context.Context, req report.PeriodSummaryRequest) (report.PeriodSummary, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodSummary{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	entries, err := s.entryRepo.ListByEmployeeAndPeriod(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.PeriodSummary{}, fmt.Errorf("failed to load entries for summary: %w", err)
	}

	return BuildSummary(req.EmployeeID, start, end, entries, s.rules), nil
}

// BuildSummary computes the period summary from a snapshot of entries.
// It is deterministic: anomalies come out ordered by date, missing days
// before excess hours on the same date.
func BuildSummary(employeeID string, start, end time.Time, entries []timecard.Entry, rules timecard.Rules) report.PeriodSummary {
	summary := report.PeriodSummary{
		EmployeeID:  employeeID,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		Anomalies:   []report.Anomaly{},
	}

	entriesByDate := make(map[string][]timecard.Entry)
	approvedHoursByDate := make(map[string]float64)

	for _, e := range entries {
		date := e.WorkDate.Format("2006-01-02")
		entriesByDate[date] = append(entriesByDate[date], e)

		switch e.Status {
		case timecard.StatusApproved:
			summary.ApprovedHours += e.Hours()
			approvedHoursByDate[date] += e.Hours()
		case timecard.StatusPending:
			summary.PendingHours += e.Hours()
		case timecard.StatusRejected:
			summary.RejectedHours += e.Hours()
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")

		if rules.WorkingDays.Includes(day) && len(entriesByDate[date]) == 0 {
			summary.Anomalies = append(summary.Anomalies, report.Anomaly{
				Kind: report.AnomalyMissingDay,
				Date: date,
			})
		}

		if hours, ok := approvedHoursByDate[date]; ok {
			if hours > 0 {
				summary.ApprovedDays++
			}
			if hours > rules.DailyHoursCap {
				summary.Anomalies = append(summary.Anomalies, report.Anomaly{
					Kind:  report.AnomalyExcessHours,
					Date:  date,
					Hours: hours,
				})
			}
		}
	}

	return summary
}
