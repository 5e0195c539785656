package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DeliveryDedup skips redelivered webhook events using a Redis existence
// check. The identity provider retries deliveries for up to a day, so
// keys expire after dedupTTL.
// Key format: webhook:delivery:<message_id>
type DeliveryDedup struct {
	client *redis.Client
}

// NewDeliveryDedup creates a DeliveryDedup wrapping the given Redis client.
func NewDeliveryDedup(client *redis.Client) *DeliveryDedup {
	return &DeliveryDedup{client: client}
}

// Seen reports whether this delivery id has already been processed.
func (d *DeliveryDedup) Seen(ctx context.Context, deliveryID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(deliveryID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this delivery has been processed.
func (d *DeliveryDedup) Mark(ctx context.Context, deliveryID string) error {
	return d.client.Set(ctx, d.key(deliveryID), "1", dedupTTL).Err()
}

func (d *DeliveryDedup) key(deliveryID string) string {
	return "webhook:delivery:" + deliveryID
}
