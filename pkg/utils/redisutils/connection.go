// The redisutils package simplifies and automates recurring operations like
// connecting to, formatting for, and parsing from Redis.
package redisutils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const DefaultAddr = "localhost:6379"

// SetupClient() initializes a new Redis client connected to addr. If addr is
// empty, the DefaultAddr is used.
func SetupClient(addr string) *redis.Client {
	if addr == "" {
		addr = DefaultAddr
	}

	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// CleanupRedis() cleans up the Redis database between tests to ensure isolation.
func CleanupRedis(client *redis.Client) {
	client.FlushAll(context.Background())
}
