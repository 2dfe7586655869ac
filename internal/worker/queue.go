package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const emailQueueKey = "deliveries:email"

// RedisQueue carries pending message ids to the delivery worker. It
// implements messaging.DeliveryQueue.
type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) Enqueue(ctx context.Context, messageID uuid.UUID) error {
	return q.client.LPush(ctx, emailQueueKey, messageID.String()).Err()
}
