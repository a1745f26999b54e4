package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/database"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type timecardRepositoryImpl struct {
	db *database.DB
}

func NewTimecardRepository(db *database.DB) timecard.Repository {
	return &timecardRepositoryImpl{db: db}
}

const entryColumns = `
	tce.id, tce.employee_id, tce.work_date, tce.start_time, tce.end_time,
	tce.status, tce.submitted_at, tce.decided_at, tce.decided_by, tce.comment,
	tce.created_at, tce.updated_at`

func scanEntry(row pgx.Row) (timecard.Entry, error) {
	var e timecard.Entry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.WorkDate, &e.StartTime, &e.EndTime,
		&e.Status, &e.SubmittedAt, &e.DecidedAt, &e.DecidedBy, &e.Comment,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *timecardRepositoryImpl) Create(ctx context.Context, entry timecard.Entry) (timecard.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_card_entries (
			id, employee_id, work_date, start_time, end_time,
			status, submitted_at, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, NOW(), NOW(), NOW()
		) RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.WorkDate, entry.StartTime, entry.EndTime,
		entry.Status,
	).Scan(&entry.ID, &entry.SubmittedAt, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		// The constraints are the source of truth for the duplicate and
		// overlap invariants; a racing submission that slipped past the
		// pre-check surfaces here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return timecard.Entry{}, timecard.ErrDuplicateSlot
			case pgExclusionViolation:
				return timecard.Entry{}, timecard.ErrOverlappingEntry
			}
		}
		return timecard.Entry{}, fmt.Errorf("failed to create time card entry: %w", err)
	}

	return entry, nil
}

func (r *timecardRepositoryImpl) GetByID(ctx context.Context, id string) (timecard.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + entryColumns + `, e.full_name as employee_name
		FROM time_card_entries tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.id = $1
	`

	var entry timecard.Entry
	var employeeName string
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.WorkDate, &entry.StartTime, &entry.EndTime,
		&entry.Status, &entry.SubmittedAt, &entry.DecidedAt, &entry.DecidedBy, &entry.Comment,
		&entry.CreatedAt, &entry.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.Entry{}, timecard.ErrEntryNotFound
		}
		return timecard.Entry{}, fmt.Errorf("failed to get time card entry: %w", err)
	}

	entry.EmployeeName = &employeeName
	return entry, nil
}

func (r *timecardRepositoryImpl) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]timecard.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + entryColumns + `
		FROM time_card_entries tce
		WHERE tce.employee_id = $1
		  AND tce.work_date >= $2
		  AND tce.work_date <= $3
		ORDER BY tce.work_date ASC, tce.start_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time card entries: %w", err)
	}
	defer rows.Close()

	var entries []timecard.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time card entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func (r *timecardRepositoryImpl) ListByStatus(ctx context.Context, status timecard.EntryStatus) ([]timecard.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + entryColumns + `, e.full_name as employee_name
		FROM time_card_entries tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.status = $1
		ORDER BY tce.work_date ASC, tce.start_time ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query time card entries: %w", err)
	}
	defer rows.Close()

	var entries []timecard.Entry
	for rows.Next() {
		var entry timecard.Entry
		var employeeName string
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.WorkDate, &entry.StartTime, &entry.EndTime,
			&entry.Status, &entry.SubmittedAt, &entry.DecidedAt, &entry.DecidedBy, &entry.Comment,
			&entry.CreatedAt, &entry.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time card entry: %w", err)
		}
		entry.EmployeeName = &employeeName
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func (r *timecardRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timecard.EntryStatus, decidedBy string, comment *string) (timecard.Entry, error) {
	var entry timecard.Entry

	// Conditional UPDATE plus the existence check run on one
	// transaction: of two racing decisions only one can match
	// status = 'pending', and the loser's diagnosis sees the same
	// connection state.
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE time_card_entries tce
			SET status = $1, decided_at = NOW(), decided_by = $2, comment = $3, updated_at = NOW()
			WHERE tce.id = $4 AND tce.status = 'pending'
			RETURNING` + entryColumns + `
		`

		var scanErr error
		entry, scanErr = scanEntry(q.QueryRow(txCtx, query, status, decidedBy, comment, id))
		if scanErr == nil {
			return nil
		}
		if !errors.Is(scanErr, pgx.ErrNoRows) {
			return fmt.Errorf("failed to update time card entry status: %w", scanErr)
		}

		var exists bool
		if err := q.QueryRow(txCtx, `SELECT EXISTS (SELECT 1 FROM time_card_entries WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check time card entry existence: %w", err)
		}
		if !exists {
			return timecard.ErrEntryNotFound
		}
		return timecard.ErrAlreadyProcessed
	})
	if err != nil {
		return timecard.Entry{}, err
	}

	return entry, nil
}
