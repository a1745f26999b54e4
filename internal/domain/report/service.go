package report

import (
	"context"
)

// Service - read-side aggregation over stored entries
type Service interface {
	// Summarize computes the period summary for one employee. It never
	// mutates state and is deterministic for a given snapshot of
	// entries.
	Summarize(ctx context.Context, req PeriodSummaryRequest) (PeriodSummary, error)
}
