package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"waste-report-server/models"
)

// RedisPublisher sends complaint events to a Redis channel so every
// server instance can forward them to its own subscribers
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event models.ComplaintEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}

// NewRedisClient parses REDIS_URL and checks the connection
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// StartRedisRelay forwards every frame on channel into hub until ctx is cancelled
func StartRedisRelay(ctx context.Context, client *redis.Client, channel string, hub *Hub) {
	pubsub := client.Subscribe(ctx, channel)
	go func() {
		defer pubsub.Close()
		log.Printf("📡 Relaying Redis channel %s to websocket clients", channel)

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if !json.Valid([]byte(msg.Payload)) {
					log.Printf("⚠️ Dropping malformed event on %s", channel)
					continue
				}
				if err := hub.PublishRaw(ctx, []byte(msg.Payload)); err != nil {
					return
				}
			}
		}
	}()
}
