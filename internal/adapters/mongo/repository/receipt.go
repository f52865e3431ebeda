package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafaelleal24/glowin/internal/adapters/mongo/document"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type ReceiptRepository struct {
	*BaseRepository[document.ReceiptDocument]
}

func NewReceiptRepository(db *mongo.Database) port.ReceiptPort {
	repo := &ReceiptRepository{
		BaseRepository: NewBaseRepository[document.ReceiptDocument](db),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": document.ReceiptCollection,
		})
	}

	return repo
}

func (r *ReceiptRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "session_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	if receipt.ID != "" {
		return errors.New("cannot create receipt with existing ID")
	}

	doc := document.ToReceiptDocument(receipt)
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	receipt.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Receipt, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("receipt not found")
		}
		return nil, err
	}
	return doc.ToDomain(), nil
}

// ListBySession returns the session's receipts, newest first.
func (r *ReceiptRepository) ListBySession(ctx context.Context, sessionID domain.ID, limit int64) ([]*domain.Receipt, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"session_id": string(sessionID)}, opts)
	if err != nil {
		return nil, err
	}

	receipts := make([]*domain.Receipt, len(docs))
	for i, doc := range docs {
		receipts[i] = doc.ToDomain()
	}
	return receipts, nil
}
