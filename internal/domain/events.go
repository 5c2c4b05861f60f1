package domain

// Event topics carried on the in-process bus.
const (
	TopicApplicationSubmitted = "application:submitted"
	TopicMessageSent          = "message:sent"
)

// EventPublisher is satisfied by EventBus.Bus.
type EventPublisher interface {
	Publish(topic string, args ...interface{})
}
