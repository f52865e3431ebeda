package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Message is a serialized event as it sits in the outbox.
type Message struct {
	EventName  string
	EntityName string
	Data       []byte
}

// BrokerPort delivers outbox messages. Delivery is at least once, so
// consumers dedupe on the receipt id carried in the payload.
type BrokerPort interface {
	Publish(ctx context.Context, msg Message) error
	HealthCheck() error
	Close() error
}
