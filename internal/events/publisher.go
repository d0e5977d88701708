package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/freegoat/admin-dashboard/internal/logger"
)

// asyncPublishTimeout bounds async publish operations.
const asyncPublishTimeout = 5 * time.Second

// Publisher appends audit events to the Redis stream.
type Publisher struct {
	client *redis.Client
	log    logger.Logger
}

// NewPublisher creates a publisher. Returns nil if client is nil.
func NewPublisher(client *redis.Client, log logger.Logger) *Publisher {
	if client == nil {
		return nil
	}
	return &Publisher{client: client, log: log}
}

// Publish appends an event to the stream. A nil publisher is a no-op.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if p == nil || p.client == nil {
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: map[string]any{"event": string(payload)},
	})
	if publishErr := result.Err(); publishErr != nil {
		if p.log != nil {
			p.log.Error("Failed to publish event",
				logger.String("event_type", string(event.EventType)),
				logger.String("resource_id", event.ResourceID),
				logger.Error(publishErr),
			)
		}
		return fmt.Errorf("publish to stream: %w", publishErr)
	}

	if p.log != nil {
		p.log.Debug("Published audit event",
			logger.String("event_type", string(event.EventType)),
			logger.String("resource_id", event.ResourceID),
			logger.String("stream_id", result.Val()),
		)
	}
	return nil
}

// PublishAsync publishes without blocking the request path. Errors are
// logged, never surfaced to the caller.
func (p *Publisher) PublishAsync(eventType EventType, resourceID string, payload any) {
	if p == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncPublishTimeout)
		defer cancel()

		event := Event{
			EventType:  eventType,
			ResourceID: resourceID,
			Payload:    payload,
		}
		if err := p.Publish(ctx, event); err != nil && p.log != nil {
			p.log.Error("Async publish failed",
				logger.String("event_type", string(eventType)),
				logger.Error(err),
			)
		}
	}()
}
