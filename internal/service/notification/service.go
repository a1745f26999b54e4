package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiftwise/timecard-backend-go/internal/domain/employee"
	"github.com/shiftwise/timecard-backend-go/internal/domain/notification"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/email"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/events"
)

type service struct {
	repo         notification.Repository
	employeeRepo employee.Repository
	mailer       email.Mailer
}

func NewNotificationService(repo notification.Repository, employeeRepo employee.Repository, mailer email.Mailer) notification.Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		mailer:       mailer,
	}
}

// RegisterHandlers subscribes the notifier to the decision events the
// approval workflow publishes.
func RegisterHandlers(bus *events.Bus, svc notification.Service) {
	bus.Subscribe(timecard.EventDecisionMade, func(ctx context.Context, ev events.Event) error {
		decision, ok := ev.Payload().(timecard.DecisionMade)
		if !ok {
			return fmt.Errorf("unexpected payload type for %s", ev.EventType())
		}
		return svc.NotifyDecision(ctx, decision)
	})
}

func (s *service) NotifyDecision(ctx context.Context, decision timecard.DecisionMade) error {
	emp, err := s.employeeRepo.GetByID(ctx, decision.Entry.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to resolve notification recipient: %w", err)
	}

	kind, title := describe(decision.Decision)
	workDate := decision.Entry.WorkDate.Format("2006-01-02")

	message := fmt.Sprintf("Your time card entry for %s (%s-%s, %.2f hours) was %s.",
		workDate,
		decision.Entry.StartTime.Format("15:04"),
		decision.Entry.EndTime.Format("15:04"),
		decision.Entry.Hours(),
		decision.Decision,
	)
	comment := ""
	if decision.Decision == timecard.StatusRejected && decision.Entry.Comment != nil {
		comment = *decision.Entry.Comment
		message += " Reviewer comment: " + comment
	}

	record, err := s.repo.Create(ctx, notification.Notification{
		EmployeeID: emp.ID,
		Kind:       kind,
		Title:      title,
		Message:    message,
	})
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	sent, err := s.mailer.SendDecision(emp.Email, emp.FullName, workDate, string(decision.Decision), comment)
	if err != nil {
		return fmt.Errorf("%w: %v", notification.ErrDeliveryFailed, err)
	}
	if !sent {
		// SMTP is not configured; the in-app record stands on its own
		// and emailed_at stays unset.
		return nil
	}

	if err := s.repo.MarkEmailed(ctx, record.ID); err != nil {
		// The email went out; a stale emailed_at only affects the audit
		// trail, so log and move on.
		slog.Warn("failed to mark notification emailed", "notification_id", record.ID, "error", err)
	}

	return nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func describe(decision timecard.EntryStatus) (notification.Kind, string) {
	if decision == timecard.StatusApproved {
		return notification.KindEntryApproved, "Time card entry approved"
	}
	return notification.KindEntryRejected, "Time card entry rejected"
}
