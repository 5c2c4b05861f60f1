package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, message, type) VALUES ($1, $2, $3)
		 RETURNING id, read, created_at`,
		n.UserID, n.Message, n.Type,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
	return wrap(err, "insert notification")
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, type, read, created_at FROM notifications
		 WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, wrap(err, "list notifications")
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, wrap(err, "scan notification")
		}
		out = append(out, n)
	}
	return out, wrap(rows.Err(), "list notifications")
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID,
	).Scan(&n)
	return n, wrap(err, "count unread")
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, wrap(err, "mark read")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *notificationRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, wrap(err, "delete notification")
	}
	return tag.RowsAffected() > 0, nil
}
