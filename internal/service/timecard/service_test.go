package timecard

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/events"
)

// fakeRepository mirrors the storage guarantees the service relies on:
// the slot uniqueness and overlap constraints on Create, and the
// pending-only conditional update behind UpdateStatus.
type fakeRepository struct {
	mu      sync.Mutex
	entries map[string]timecard.Entry
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: make(map[string]timecard.Entry)}
}

func (r *fakeRepository) Create(_ context.Context, entry timecard.Entry) (timecard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.EmployeeID != entry.EmployeeID {
			continue
		}
		if existing.WorkDate.Equal(entry.WorkDate) && existing.StartTime.Equal(entry.StartTime) {
			return timecard.Entry{}, timecard.ErrDuplicateSlot
		}
		if entry.Overlaps(existing) {
			return timecard.Entry{}, timecard.ErrOverlappingEntry
		}
	}

	entry.ID = uuid.NewString()
	entry.SubmittedAt = time.Now()
	entry.CreatedAt = entry.SubmittedAt
	entry.UpdatedAt = entry.SubmittedAt
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (timecard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return timecard.Entry{}, timecard.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeRepository) ListByEmployeeAndPeriod(_ context.Context, employeeID string, start, end time.Time) ([]timecard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []timecard.Entry
	for _, e := range r.entries {
		if e.EmployeeID != employeeID {
			continue
		}
		if e.WorkDate.Before(start) || e.WorkDate.After(end) {
			continue
		}
		result = append(result, e)
	}
	sortEntries(result)
	return result, nil
}

func (r *fakeRepository) ListByStatus(_ context.Context, status timecard.EntryStatus) ([]timecard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []timecard.Entry
	for _, e := range r.entries {
		if e.Status == status {
			result = append(result, e)
		}
	}
	sortEntries(result)
	return result, nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id string, status timecard.EntryStatus, decidedBy string, comment *string) (timecard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return timecard.Entry{}, timecard.ErrEntryNotFound
	}
	if entry.Status != timecard.StatusPending {
		return timecard.Entry{}, timecard.ErrAlreadyProcessed
	}

	now := time.Now()
	entry.Status = status
	entry.DecidedAt = &now
	entry.DecidedBy = &decidedBy
	entry.Comment = comment
	entry.UpdatedAt = now
	r.entries[id] = entry
	return entry, nil
}

func sortEntries(entries []timecard.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].WorkDate.Equal(entries[j].WorkDate) {
			return entries[i].WorkDate.Before(entries[j].WorkDate)
		}
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
}

func quietBus() *events.Bus {
	return events.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestService(repo timecard.Repository, bus *events.Bus) timecard.Service {
	return NewTimecardService(repo, timecard.DefaultRules(), bus)
}

func yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, quietBus())

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, timecard.StatusPending, entry.Status)
	assert.Equal(t, "emp-1", entry.EmployeeID)
	assert.Equal(t, 8.0, entry.Hours())
}

func TestSubmitMalformedPayload(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	_, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  "13/01/2026",
		StartTime: "9am",
		EndTime:   "17:00",
	})

	assert.Error(t, err)
}

func TestSubmitFutureDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	_, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	assert.ErrorIs(t, err, timecard.ErrFutureDate)
}

func TestSubmitDuplicateSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	req := timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "12:00",
	}
	_, err := svc.Submit(ctx, "emp-1", req)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "emp-1", req)
	assert.ErrorIs(t, err, timecard.ErrDuplicateSlot)
}

func TestSubmitOverlap(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	_, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "11:00",
		EndTime:   "15:00",
	})
	assert.ErrorIs(t, err, timecard.ErrOverlappingEntry)
}

func TestSubmitBackToBackIntervals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	_, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "12:00",
		EndTime:   "17:00",
	})
	assert.NoError(t, err)
}

func TestSubmitOtherEmployeeUnaffected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	req := timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	_, err := svc.Submit(ctx, "emp-1", req)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "emp-2", req)
	assert.NoError(t, err)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	bus := quietBus()
	svc := newTestService(repo, bus)

	published := make(chan events.Event, 1)
	bus.Subscribe(timecard.EventDecisionMade, func(_ context.Context, ev events.Event) error {
		published <- ev
		return nil
	})

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	decided, err := svc.Approve(ctx, entry.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, timecard.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "admin-1", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)

	select {
	case ev := <-published:
		decision, ok := ev.Payload().(timecard.DecisionMade)
		require.True(t, ok)
		assert.Equal(t, entry.ID, decision.Entry.ID)
		assert.Equal(t, timecard.StatusApproved, decision.Decision)
	case <-time.After(time.Second):
		t.Fatal("decision event was not published")
	}
}

func TestApproveUnknownEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	_, err := svc.Approve(ctx, uuid.NewString(), "admin-1")
	assert.ErrorIs(t, err, timecard.ErrEntryNotFound)
}

func TestDecideTwice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, quietBus())

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, entry.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, entry.ID, "admin-2", "too many hours")
	assert.ErrorIs(t, err, timecard.ErrAlreadyProcessed)

	// The first decision stands.
	stored, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, timecard.StatusApproved, stored.Status)
	assert.Equal(t, "admin-1", *stored.DecidedBy)
}

func TestRejectRequiresComment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, quietBus())

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	for _, comment := range []string{"", "   ", "\t\n"} {
		_, err = svc.Reject(ctx, entry.ID, "admin-1", comment)
		assert.ErrorIs(t, err, timecard.ErrMissingComment)
	}

	// A failed rejection leaves the entry reviewable.
	stored, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, timecard.StatusPending, stored.Status)
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	decided, err := svc.Reject(ctx, entry.ID, "admin-1", "wrong project code")
	require.NoError(t, err)
	assert.Equal(t, timecard.StatusRejected, decided.Status)
	require.NotNil(t, decided.Comment)
	assert.Equal(t, "wrong project code", *decided.Comment)
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepository(), quietBus())

	first, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	second, err := svc.Submit(ctx, "emp-2", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "13:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, second.ID, "admin-1")
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
}

func TestConcurrentDecisions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, quietBus())

	entry, err := svc.Submit(ctx, "emp-1", timecard.SubmitEntryRequest{
		WorkDate:  yesterday(),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	const attempts = 16
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, err := svc.Approve(ctx, entry.ID, "admin-1")
				results <- err
			} else {
				_, err := svc.Reject(ctx, entry.ID, "admin-2", "duplicate submission")
				results <- err
			}
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, timecard.ErrAlreadyProcessed)
			losses++
		}
	}

	assert.Equal(t, 1, wins, "exactly one decision must win")
	assert.Equal(t, attempts-1, losses)

	stored, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, stored.Decided())
}
