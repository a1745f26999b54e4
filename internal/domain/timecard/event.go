package timecard

import (
	"time"

	"github.com/google/uuid"
)

// EventDecisionMade is published after an entry transition commits.
const EventDecisionMade = "timecard.decision_made"

// DecisionMade carries a committed approve/reject decision to the
// notifier. Delivery is best-effort and never rolls the decision back.
type DecisionMade struct {
	ID       string
	Entry    Entry
	Decision EntryStatus
	At       time.Time
}

func NewDecisionMade(entry Entry) DecisionMade {
	decidedAt := time.Now()
	if entry.DecidedAt != nil {
		decidedAt = *entry.DecidedAt
	}
	return DecisionMade{
		ID:       uuid.New().String(),
		Entry:    entry,
		Decision: entry.Status,
		At:       decidedAt,
	}
}

func (d DecisionMade) EventType() string     { return EventDecisionMade }
func (d DecisionMade) EventID() string       { return d.ID }
func (d DecisionMade) OccurredAt() time.Time { return d.At }
func (d DecisionMade) Payload() interface{}  { return d }
