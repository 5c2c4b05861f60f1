// Package events wires domain events to their side effects. Subscribers run
// synchronously on the publishing goroutine and never fail the publisher.
package events

import (
	"context"
	"fmt"

	EventBus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
)

// Notifier stores system notifications.
type Notifier interface {
	Notify(ctx context.Context, userID int64, message, kind string) (*domain.Notification, error)
}

type subscriber struct {
	notifier Notifier
}

// NewBus returns a bus with the notification subscribers registered.
func NewBus(notifier Notifier) (EventBus.Bus, error) {
	bus := EventBus.New()
	s := &subscriber{notifier: notifier}
	if err := bus.Subscribe(domain.TopicApplicationSubmitted, s.onApplicationSubmitted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(domain.TopicMessageSent, s.onMessageSent); err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *subscriber) onApplicationSubmitted(ctx context.Context, evt domain.ApplicationSubmitted) {
	msg := fmt.Sprintf("You have successfully applied to %s at %s", evt.Job.Title, evt.Job.Company)
	s.notify(ctx, evt.Application.UserID, msg, domain.NotificationSuccess, domain.TopicApplicationSubmitted)
}

func (s *subscriber) onMessageSent(ctx context.Context, evt domain.MessageSent) {
	msg := fmt.Sprintf("New message from %s", evt.SenderName)
	s.notify(ctx, evt.Message.ReceiverID, msg, domain.NotificationMessage, domain.TopicMessageSent)
}

func (s *subscriber) notify(ctx context.Context, userID int64, message, kind, topic string) {
	defer func() {
		if r := recover(); r != nil {
			metrics.NotificationFailures.Inc()
			logger.Log.Error("Notification subscriber panicked", zap.String("topic", topic), zap.Any("panic", r))
		}
	}()
	if _, err := s.notifier.Notify(ctx, userID, message, kind); err != nil {
		metrics.NotificationFailures.Inc()
		logger.Log.Warn("Failed to store notification",
			zap.String("topic", topic), zap.Int64("user_id", userID), zap.Error(err))
	}
}
