package notification

import (
	"time"
)

// Kind represents the type of notification
type Kind string

const (
	KindEntryApproved Kind = "entry_approved"
	KindEntryRejected Kind = "entry_rejected"
)

// Notification is the in-app record of a message sent to an employee.
// EmailedAt is set only when the decision email actually went out.
type Notification struct {
	ID         string
	EmployeeID string
	Kind       Kind
	Title      string
	Message    string
	EmailedAt  *time.Time
	CreatedAt  time.Time
}

type Response struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	EmailedAt *string `json:"emailed_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func NewResponse(n Notification) Response {
	resp := Response{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.EmailedAt != nil {
		emailedAt := n.EmailedAt.Format(time.RFC3339)
		resp.EmailedAt = &emailedAt
	}
	return resp
}
