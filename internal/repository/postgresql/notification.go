package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftwise/timecard-backend-go/internal/domain/notification"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, kind, title, message, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.EmployeeID, n.Kind, n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepositoryImpl) MarkEmailed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE notifications SET emailed_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification emailed: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}

func (r *notificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, title, message, emailed_at, created_at
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Kind, &n.Title, &n.Message, &n.EmailedAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notifications, nil
}
