package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shortlink/internal/conf"
)

// NewRedis connects to Redis when an address is configured. A nil client
// means caching is disabled.
func NewRedis(c *conf.Data, logger *zap.Logger) (*redis.Client, func(), error) {
	rc := c.Redis
	if rc == nil || rc.Addr == "" {
		logger.Info("redis not configured, lookup cache disabled")
		return nil, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         rc.Addr,
		Password:     rc.Password,
		DB:           rc.DB,
		ReadTimeout:  rc.ReadTimeout.Std(),
		WriteTimeout: rc.WriteTimeout.Std(),
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", rc.Addr))

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis", zap.Error(err))
		}
	}
	return rdb, cleanup, nil
}
