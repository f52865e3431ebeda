package port

import (
	"context"

	"github.com/rafaelleal24/glowin/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// EventOutboxPort records an event for later publishing, inside the caller's transaction.
type EventOutboxPort interface {
	Enqueue(ctx context.Context, event domain.Event) error
}
