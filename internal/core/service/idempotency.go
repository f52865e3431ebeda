package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyEntry[T any] struct {
	Status      IdempotencyStatus `json:"status"`
	PayloadHash string            `json:"payload_hash"`
	Result      *T                `json:"result,omitempty"`
}

// IdempotencyService runs an operation at most once per client key. Keys are
// namespaced by scope so one cache can serve several operations.
type IdempotencyService[T any] struct {
	cache        port.CachePort[IdempotencyEntry[T]]
	scope        string
	ttl          time.Duration
	pollInterval time.Duration
	waitTimeout  time.Duration
}

func NewIdempotencyService[T any](
	cache port.CachePort[IdempotencyEntry[T]],
	scope string,
	ttl time.Duration,
	pollInterval time.Duration,
	waitTimeout time.Duration,
) *IdempotencyService[T] {
	return &IdempotencyService[T]{
		cache:        cache,
		scope:        scope,
		ttl:          ttl,
		pollInterval: pollInterval,
		waitTimeout:  waitTimeout,
	}
}

func (s *IdempotencyService[T]) cacheKey(key string) string {
	return fmt.Sprintf("idempotency:%s:%s", s.scope, key)
}

// Do runs fn for the first request under key and stores its result. A
// duplicate with the same payload waits for that result instead of running fn;
// a duplicate with another payload is rejected. When the first request fails
// its claim is dropped and a waiting duplicate takes over.
func (s *IdempotencyService[T]) Do(ctx context.Context, key, payloadHash string, fn func(ctx context.Context) (*T, error)) (*T, error) {
	scoped := s.cacheKey(key)
	deadline := time.Now().Add(s.waitTimeout)

	for {
		claimed, err := s.cache.SetNX(ctx, scoped, &IdempotencyEntry[T]{
			Status:      IdempotencyProcessing,
			PayloadHash: payloadHash,
		}, s.ttl)
		if err != nil {
			return nil, fmt.Errorf("idempotency claim %s: %w", scoped, err)
		}
		if claimed {
			return s.run(ctx, scoped, payloadHash, fn)
		}

		entry, err := s.await(ctx, scoped, payloadHash, deadline)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return entry.Result, nil
		}
	}
}

func (s *IdempotencyService[T]) run(ctx context.Context, scoped, payloadHash string, fn func(ctx context.Context) (*T, error)) (*T, error) {
	attrs := map[string]any{"idempotency_key": scoped, "scope": s.scope}

	result, err := fn(ctx)
	if err != nil {
		// The claim must go even if the caller hung up, or the key stays locked until ttl.
		if delErr := s.cache.Del(context.WithoutCancel(ctx), scoped); delErr != nil {
			logger.Error(ctx, "idempotency: release failed", delErr, attrs)
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, scoped, &IdempotencyEntry[T]{
		Status:      IdempotencyCompleted,
		PayloadHash: payloadHash,
		Result:      result,
	}, s.ttl); err != nil {
		logger.Error(ctx, "idempotency: storing result failed", err, attrs)
	}
	return result, nil
}

// await polls until the entry completes (returned) or disappears (nil, nil).
func (s *IdempotencyService[T]) await(ctx context.Context, scoped, payloadHash string, deadline time.Time) (*IdempotencyEntry[T], error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		entry, err := s.cache.Get(ctx, scoped)
		if err != nil {
			return nil, fmt.Errorf("idempotency lookup %s: %w", scoped, err)
		}
		if entry == nil {
			return nil, nil
		}
		if entry.PayloadHash != payloadHash {
			return nil, serviceerrors.NewUnprocessableEntityError("idempotency key already used with a different payload")
		}
		if entry.Status == IdempotencyCompleted {
			return entry, nil
		}
		if !time.Now().Before(deadline) {
			return nil, serviceerrors.NewConflictError("a request with this idempotency key is still being processed")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
