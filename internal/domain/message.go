package domain

import (
	"context"
	"time"
)

type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

type MessageInput struct {
	CandidateID int64  `json:"candidateId" validate:"required,gt=0"`
	Message     string `json:"message" validate:"required,notblank"`
}

// MessageSent is published after a message row is stored.
type MessageSent struct {
	Message    *Message
	SenderName string
}

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	ListForUser(ctx context.Context, userID int64) ([]Message, error)
}

type MessageUsecase interface {
	Send(ctx context.Context, actor *Actor, input *MessageInput) (*Message, error)
	List(ctx context.Context, actor *Actor) ([]Message, error)
}
