// Package events delivers committed circulation changes over redis pub/sub.
package events

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
)

// message is the wire form of an event.
type message circulation.Event

func (m message) MarshalBinary() ([]byte, error) {
	return sonic.Marshal(m)
}

func Decode(payload string) (circulation.Event, error) {
	var m message
	if err := sonic.UnmarshalString(payload, &m); err != nil {
		return circulation.Event{}, fmt.Errorf("decode event: %w", err)
	}
	return circulation.Event(m), nil
}

type RedisPublisher struct {
	c       *redis.Client
	channel string
}

func NewRedisPublisher(c *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{c: c, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev circulation.Event) error {
	if err := p.c.Publish(ctx, p.channel, message(ev)).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", ev.Type, p.channel, err)
	}
	return nil
}

// Ping reports whether redis is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.c.Ping(ctx).Err()
}

// Listen subscribes to the channel and calls handle for every event until ctx
// is done. Payloads that do not decode are logged and skipped.
func Listen(ctx context.Context, c *redis.Client, channel string, handle func(circulation.Event)) error {
	logger := logging.FromContext(ctx)

	pubsub := c.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	defer func() { _ = pubsub.Close() }()

	ch := pubsub.Channel()
	logger.WithField("channel", channel).Info("listening for circulation events")
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			ev, err := Decode(msg.Payload)
			if err != nil {
				logger.WithError(err).Warn("skipping malformed event")
				continue
			}
			handle(ev)
		}
	}
}
