package events

import "time"

// DomainEvent is implemented by every state change the store announces.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}
