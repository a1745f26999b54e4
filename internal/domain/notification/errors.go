package notification

import "errors"

var (
	// ErrDeliveryFailed wraps an email transport failure. It is logged
	// as a warning by the event bus and never undoes the decision that
	// triggered the notification.
	ErrDeliveryFailed = errors.New("notification delivery failed")
)
