// shared/redis/client.go
package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClusterClient creates and returns a configured Redis Cluster
// client. Any component that needs the cache layer connects through here.
func NewRedisClusterClient(addrs []string, password string) (*redis.ClusterClient, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no Redis addresses provided")
	}

	rdb := redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        addrs,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  6 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis cluster at %v: %w", addrs, err)
	}
	log.Println("Successfully connected to Redis cluster.")
	return rdb, nil
}
