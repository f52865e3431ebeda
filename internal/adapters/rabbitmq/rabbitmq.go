package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rafaelleal24/glowin/internal/adapters/config"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultConfirmTimeout = 5 * time.Second

var errNacked = errors.New("broker rejected message")

// RabbitMQAdapter publishes outbox messages on a confirm mode channel. A
// message counts as delivered only once the broker acks it.
type RabbitMQAdapter struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	config  config.RabbitMQConfig
}

func NewRabbitMQAdapter(cfg config.RabbitMQConfig) (*RabbitMQAdapter, error) {
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = defaultConfirmTimeout
	}
	adapter := &RabbitMQAdapter{config: cfg}

	if err := adapter.open(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return adapter, nil
}

// open dials, declares the configured exchanges and switches the channel to confirm mode.
func (r *RabbitMQAdapter) open() error {
	conn, err := amqp.Dial(r.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareExchanges(ch, r.config.ExchangeConfigs); err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	r.conn = conn
	r.channel = ch
	return nil
}

func declareExchanges(ch *amqp.Channel, exchanges []config.ExchangeConfig) error {
	for _, ec := range exchanges {
		if err := ch.ExchangeDeclare(ec.Name, ec.Type, ec.Durable, ec.AutoDelete, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", ec.Name, err)
		}
	}
	return nil
}

// release drops the current connection. Callers hold r.mu.
func (r *RabbitMQAdapter) release() {
	if r.channel != nil {
		_ = r.channel.Close()
		r.channel = nil
	}
	if r.conn != nil {
		_ = r.conn.Close()
		r.conn = nil
	}
}

// ExchangeName is the exchange events of the given entity are published to.
func ExchangeName(entityName string) string {
	return "exchange." + entityName
}

// NewPublishing builds the AMQP message for msg. The event name doubles as routing key and type.
func NewPublishing(appID string, msg port.Message) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         msg.Data,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         msg.EventName,
		AppId:        appID,
		Headers:      amqp.Table{"entity": msg.EntityName},
	}
}

func (r *RabbitMQAdapter) Publish(ctx context.Context, msg port.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	publishing := NewPublishing(r.config.AppID, msg)
	exchange := ExchangeName(msg.EntityName)
	attrs := map[string]any{
		"exchange":    exchange,
		"routing_key": msg.EventName,
	}

	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.config.RetryDelay):
			}
		}

		attrs["attempt"] = attempt + 1
		if lastErr = r.publishOnce(ctx, exchange, msg.EventName, publishing); lastErr == nil {
			return nil
		}
		logger.Warn(ctx, "publish attempt failed", mergeError(attrs, lastErr))
	}

	return fmt.Errorf("failed to publish after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *RabbitMQAdapter) publishOnce(ctx context.Context, exchange, routingKey string, publishing amqp.Publishing) error {
	r.mu.Lock()
	if r.channel == nil || r.channel.IsClosed() {
		r.release()
		if err := r.open(); err != nil {
			r.mu.Unlock()
			return fmt.Errorf("reconnect failed: %w", err)
		}
	}

	confirm, err := r.channel.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, publishing)
	if err != nil {
		r.channel = nil
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, r.config.ConfirmTimeout)
	defer cancel()

	acked, err := confirm.WaitContext(waitCtx)
	if err != nil {
		return err
	}
	if !acked {
		return errNacked
	}
	return nil
}

func mergeError(attrs map[string]any, err error) map[string]any {
	merged := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		merged[k] = v
	}
	merged["error"] = err.Error()
	return merged
}

func (r *RabbitMQAdapter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		r.channel = nil
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		r.conn = nil
	}
	return errors.Join(errs...)
}

func (r *RabbitMQAdapter) HealthCheck() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return errors.New("connection is closed")
	}
	if r.channel == nil || r.channel.IsClosed() {
		return errors.New("channel is closed")
	}
	return nil
}
