package domain

import (
	"context"
	"time"
)

const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationMessage = "message"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationInput is the body of POST /notifications.
type NotificationInput struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Message string `json:"message" validate:"required,notblank"`
	Type    string `json:"type" validate:"omitempty,oneof=info success warning message"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	// MarkRead and Delete only touch rows owned by userID.
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type NotificationUsecase interface {
	List(ctx context.Context, actor *Actor, userID int64) ([]Notification, error)
	UnreadCount(ctx context.Context, actor *Actor, userID int64) (int64, error)
	MarkRead(ctx context.Context, actor *Actor, id int64) error
	Delete(ctx context.Context, actor *Actor, id int64) error
	Send(ctx context.Context, actor *Actor, input *NotificationInput) (*Notification, error)
	// Notify stores a system notification. Callers treat failures as non-fatal.
	Notify(ctx context.Context, userID int64, message, kind string) (*Notification, error)
}
