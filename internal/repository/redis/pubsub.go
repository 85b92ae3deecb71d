package redis

import (
	"context"
	"encoding/json"

	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

type TicketsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewTicketsPubSub(rdb *redis.Client) *TicketsPubSub {
	return &TicketsPubSub{
		rdb:     rdb,
		channel: ChannelTicketsChanged(),
	}
}

func (p *TicketsPubSub) PublishTicketChanged(ctx context.Context, change domain.TicketChange) error {
	b, err := json.Marshal(change)
	if err != nil {
		return err
	}

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks, calling handler for every change until ctx is done.
func (p *TicketsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, change domain.TicketChange)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var change domain.TicketChange
			if err := json.Unmarshal([]byte(m.Payload), &change); err == nil &&
				change.TicketID != "" {
				handler(ctx, change)
			}
		}
	}
}
