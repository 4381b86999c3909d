package services

import "log"

// Event types published after successful writes.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// EventPublisher delivers domain events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishEvent(eventType string, data interface{}) error
}

// publish sends an event if a publisher is configured. Failures are logged
// and never fail the request that triggered them.
func publish(p EventPublisher, eventType string, data interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(eventType, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
