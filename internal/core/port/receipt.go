package port

import (
	"context"

	"github.com/rafaelleal24/glowin/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ReceiptPort interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Receipt, error)
	ListBySession(ctx context.Context, sessionID domain.ID, limit int64) ([]*domain.Receipt, error)
}
