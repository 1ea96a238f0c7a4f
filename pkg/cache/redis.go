package cache

import (
	"context"
	"fmt"
	"time"

	"car-rental/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the redis client used as a read cache for the
// car catalog. The client satisfies redis.Cmdable, which is what the
// services depend on so tests can substitute redismock.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
