package document

import (
	"time"

	"github.com/rafaelleal24/glowin/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutboxDocument keeps the event payload as a JSON string so it can be read in the shell.
type OutboxDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EventName     string             `bson:"event_name"`
	EntityName    string             `bson:"entity_name"`
	EventData     string             `bson:"event_data"`
	Attempts      int                `bson:"attempts"`
	LastError     string             `bson:"last_error,omitempty"`
	LastAttemptAt *time.Time         `bson:"last_attempt_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (doc OutboxDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (OutboxDocument) CollectionName() string {
	return OutboxCollection
}

func NewOutboxDocument(entry outbox.Entry, createdAt time.Time) OutboxDocument {
	return OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  createdAt,
	}
}

func (doc OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         doc.ID.Hex(),
		EventName:  doc.EventName,
		EntityName: doc.EntityName,
		EventData:  []byte(doc.EventData),
		Attempts:   doc.Attempts,
	}
}
