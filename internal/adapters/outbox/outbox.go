package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/port"
)

type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	Attempts   int
}

func (e Entry) Message() port.Message {
	return port.Message{
		EventName:  e.EventName,
		EntityName: e.EntityName,
		Data:       e.EventData,
	}
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	MarkFailed(ctx context.Context, id string, reason string) error
	Delete(ctx context.Context, id string) error
}

type EventOutbox struct {
	repository Repository
}

// NewEventOutbox stores domain events as outbox entries. Call Enqueue with the
// transaction context so the entry commits together with the state it describes.
func NewEventOutbox(repository Repository) port.EventOutboxPort {
	return &EventOutbox{repository: repository}
}

func (o *EventOutbox) Enqueue(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("outbox: encode %s: %w", event.GetName(), err)
	}
	return o.repository.Insert(ctx, Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}
