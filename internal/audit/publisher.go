package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Record is the verdict summary published for each validation request.
// Diagnostics carries input errors or output warnings, never request content.
type Record struct {
	Rail        string    `json:"rail"` // "input" or "output"
	Valid       bool      `json:"valid"`
	Diagnostics []string  `json:"diagnostics"`
	Timestamp   time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, rec Record) error
}

// NopPublisher is used when no Redis address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, rec Record) error {
	return nil
}

// StreamPublisher appends verdict records to a Redis stream so downstream
// consumers can track validation quality over time.
type StreamPublisher struct {
	client *redis.Client
	stream string
	logger *zerolog.Logger
}

func NewStreamPublisher(client *redis.Client, stream string, logger *zerolog.Logger) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *StreamPublisher) Publish(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"verdict": payload},
	}).Err()
	if err != nil {
		return err
	}

	p.logger.Debug().Str("stream", p.stream).Str("rail", rec.Rail).Msg("verdict published")
	return nil
}
