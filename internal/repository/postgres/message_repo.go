package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *domain.Message) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content) VALUES ($1, $2, $3) RETURNING id, sent_at`,
		m.SenderID, m.ReceiverID, m.Content,
	).Scan(&m.ID, &m.SentAt)
	return wrap(err, "insert message")
}

func (r *messageRepo) ListForUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sender_id, receiver_id, content, sent_at FROM messages
		 WHERE sender_id = $1 OR receiver_id = $1 ORDER BY sent_at DESC, id DESC`, userID)
	if err != nil {
		return nil, wrap(err, "list messages")
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.SentAt); err != nil {
			return nil, wrap(err, "scan message")
		}
		out = append(out, m)
	}
	return out, wrap(rows.Err(), "list messages")
}
