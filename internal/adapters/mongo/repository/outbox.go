package repository

import (
	"context"
	"time"

	"github.com/rafaelleal24/glowin/internal/adapters/mongo/document"
	"github.com/rafaelleal24/glowin/internal/adapters/outbox"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pendingOrder relays events in the order they were committed.
var pendingOrder = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
	maxAttempts int
}

// NewOutboxRepository skips entries that already failed maxAttempts times. Zero disables the cap.
func NewOutboxRepository(db *mongo.Database, maxAttempts int) outbox.Repository {
	repo := &OutboxRepository{
		BaseRepository: NewBaseRepository[document.OutboxDocument](db),
		maxAttempts:    maxAttempts,
	}

	index := mongo.IndexModel{
		Keys: bson.D{{Key: "attempts", Value: 1}, {Key: "created_at", Value: 1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), index); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": document.OutboxCollection,
		})
	}
	return repo
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	_, err := r.collection.InsertOne(ctx, document.NewOutboxDocument(entry, time.Now()))
	return parseError(err)
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	filter := bson.M{}
	if r.maxAttempts > 0 {
		filter["attempts"] = bson.M{"$lt": r.maxAttempts}
	}

	docs, err := r.Find(ctx, filter, options.Find().SetLimit(int64(limit)).SetSort(pendingOrder))
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, doc.ToEntry())
	}
	return entries, nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}

	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{
		"$inc": bson.M{"attempts": 1},
		"$set": bson.M{"last_error": reason, "last_attempt_at": time.Now()},
	})
	return parseError(err)
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return parseError(err)
}
