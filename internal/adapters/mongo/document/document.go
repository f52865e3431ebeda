package document

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document is a persisted record. The zero value of each implementation names its collection.
type Document interface {
	GetID() primitive.ObjectID
	CollectionName() string
}

const (
	ReceiptCollection = "receipts"
	OutboxCollection  = "outbox"
)
