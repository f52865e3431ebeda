package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/glowin/internal/adapters/config"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
)

// Handler relays pending outbox entries to the broker on a fixed interval.
// An entry is deleted only after the broker confirmed it; failures bump its
// attempt counter and the entry is retried on a later pass.
type Handler struct {
	repository Repository
	broker     port.BrokerPort
	interval   time.Duration
	batchSize  int
}

// DrainResult counts what a single pass did.
type DrainResult struct {
	Fetched   int
	Published int
	Failed    int
}

func NewHandler(repository Repository, broker port.BrokerPort, cfg config.OutboxConfig) *Handler {
	return &Handler{
		repository: repository,
		broker:     broker,
		interval:   cfg.Interval,
		batchSize:  cfg.BatchSize,
	}
}

// Start drains once right away, so entries left by a previous process go out
// at boot, then on every tick until ctx is done.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		h.tick(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) tick(ctx context.Context) {
	result, err := h.Drain(ctx)
	if err != nil {
		logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{"batch_size": h.batchSize})
		return
	}
	if result.Fetched == 0 {
		return
	}
	logger.Info(ctx, "outbox: batch relayed", map[string]any{
		"fetched":   result.Fetched,
		"published": result.Published,
		"failed":    result.Failed,
	})
}

// Drain relays one batch. It stops early when ctx is canceled; entries not yet
// attempted stay pending.
func (h *Handler) Drain(ctx context.Context) (DrainResult, error) {
	entries, err := h.repository.FetchPending(ctx, h.batchSize)
	if err != nil {
		return DrainResult{}, err
	}

	result := DrainResult{Fetched: len(entries)}
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		if h.relay(ctx, entry) {
			result.Published++
		} else {
			result.Failed++
		}
	}
	return result, nil
}

func (h *Handler) relay(ctx context.Context, entry Entry) bool {
	attrs := map[string]any{
		"event_id":    entry.ID,
		"event_name":  entry.EventName,
		"entity_name": entry.EntityName,
	}

	if err := h.broker.Publish(ctx, entry.Message()); err != nil {
		attrs["attempts"] = entry.Attempts + 1
		logger.Error(ctx, "outbox: failed to publish event", err, attrs)
		if err := h.repository.MarkFailed(ctx, entry.ID, err.Error()); err != nil {
			logger.Error(ctx, "outbox: failed to record publish failure", err, attrs)
		}
		return false
	}

	// A failed delete means the entry is published again on the next pass.
	if err := h.repository.Delete(ctx, entry.ID); err != nil {
		logger.Warn(ctx, "outbox: published event could not be removed", attrs)
	}
	return true
}
