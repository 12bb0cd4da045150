package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"building-service/internal/models"
	"building-service/internal/storage"
)

// EventType names a building mutation.
type EventType string

const (
	BuildingCreated EventType = "created"
	BuildingUpdated EventType = "updated"
	BuildingDeleted EventType = "deleted"
)

// BuildingEvent describes one mutation of the directory.
type BuildingEvent struct {
	Type       EventType
	Building   models.Building
	OccurredAt time.Time
}

// ChangePublisher forwards building events to subscribers.
type ChangePublisher interface {
	Publish(ctx context.Context, event BuildingEvent) error
}

// Pinger is implemented by publishers whose backend can be health checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NopPublisher drops every event. Used when no feed is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BuildingEvent) error { return nil }

// RedisStreamPublisher appends events to a Redis stream.
type RedisStreamPublisher struct {
	client *storage.RedisClient
	stream string
	maxLen int64
}

// NewRedisStreamPublisher creates a publisher writing to stream, capped at
// roughly maxLen entries.
func NewRedisStreamPublisher(client *storage.RedisClient, stream string, maxLen int64) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, event BuildingEvent) error {
	data, err := json.Marshal(event.Building)
	if err != nil {
		return errors.Wrap(err, "could not encode building event")
	}
	_, err = p.client.XAdd(ctx, p.stream, p.maxLen, map[string]interface{}{
		"type":      string(event.Type),
		"id":        event.Building.ID.String(),
		"data":      string(data),
		"timestamp": strconv.FormatInt(event.OccurredAt.Unix(), 10),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event to %s", event.Type, p.stream)
	}
	return nil
}

// Ping checks the Redis connection behind the stream.
func (p *RedisStreamPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
