package timecard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/events"
)

type service struct {
	repo  timecard.Repository
	rules timecard.Rules
	bus   *events.Bus
}

func NewTimecardService(repo timecard.Repository, rules timecard.Rules, bus *events.Bus) timecard.Service {
	return &service{
		repo:  repo,
		rules: rules,
		bus:   bus,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req timecard.SubmitEntryRequest) (timecard.Entry, error) {
	if err := req.Validate(); err != nil {
		return timecard.Entry{}, err
	}

	candidate := req.ToEntry(employeeID)

	// Fast-path pre-check against the entries already stored for this
	// date. The storage constraints close the remaining race window.
	existing, err := s.repo.ListByEmployeeAndPeriod(ctx, employeeID, candidate.WorkDate, candidate.WorkDate)
	if err != nil {
		return timecard.Entry{}, fmt.Errorf("failed to load existing entries: %w", err)
	}

	if err := timecard.Validate(candidate, existing, s.rules, time.Now()); err != nil {
		return timecard.Entry{}, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return timecard.Entry{}, err
	}

	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string) (timecard.Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]timecard.Entry, error) {
	return s.repo.ListByEmployeeAndPeriod(ctx, employeeID, start, end)
}

func (s *service) ListPending(ctx context.Context) ([]timecard.Entry, error) {
	return s.repo.ListByStatus(ctx, timecard.StatusPending)
}

func (s *service) Approve(ctx context.Context, id, decidedBy string) (timecard.Entry, error) {
	entry, err := s.repo.UpdateStatus(ctx, id, timecard.StatusApproved, decidedBy, nil)
	if err != nil {
		return timecard.Entry{}, err
	}

	s.publishDecision(ctx, entry)
	return entry, nil
}

func (s *service) Reject(ctx context.Context, id, decidedBy, comment string) (timecard.Entry, error) {
	if strings.TrimSpace(comment) == "" {
		return timecard.Entry{}, timecard.ErrMissingComment
	}

	entry, err := s.repo.UpdateStatus(ctx, id, timecard.StatusRejected, decidedBy, &comment)
	if err != nil {
		return timecard.Entry{}, err
	}

	s.publishDecision(ctx, entry)
	return entry, nil
}

func (s *service) publishDecision(ctx context.Context, entry timecard.Entry) {
	// The decision is committed; notification must survive the request
	// context being cancelled once the response is written.
	s.bus.Publish(context.WithoutCancel(ctx), timecard.NewDecisionMade(entry))
}
