package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hangarhq/hangar/internal/domain"
)

const eventChannel = "hangar:events"

// EventService fans entity lifecycle events out through redis pub/sub.
type EventService struct {
	rdb *redis.Client
}

func NewEventService(rdb *redis.Client) *EventService {
	return &EventService{
		rdb: rdb,
	}
}

func (s *EventService) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.rdb.Publish(ctx, eventChannel, payload).Err()
}

// Subscribe streams events into output until ctx is done.
func (s *EventService) Subscribe(ctx context.Context, output chan<- domain.Event) {
	sub := s.rdb.Subscribe(ctx, eventChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.ErrorContext(
					ctx, "failed to decode event",
					slog.String("error", err.Error()),
					slog.String("module", "events"),
				)
				continue
			}

			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
