package notification

import (
	"context"

	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
)

// Service - the decision notifier
type Service interface {
	// NotifyDecision records an in-app notification for the entry's
	// employee and sends the decision email. Returns an error wrapping
	// ErrDeliveryFailed when the email could not be sent; the decision
	// itself is already committed and stays committed.
	NotifyDecision(ctx context.Context, decision timecard.DecisionMade) error

	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
}
