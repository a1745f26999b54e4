package notification

import (
	"context"
)

// Repository - interface for the notifications table
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	MarkEmailed(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
}
