// Package database wires up the backing stores.
package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/globalmarket/backend/internal/config"
)

// InitRedis connects the session persistence store. A failed connection is
// not fatal: the caller gets nil and the session runs in-memory only, losing
// state on restart.
func InitRedis(cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.S().Warnf("[REDIS] connection failed, session state will not persist: %v", err)
		return nil
	}

	zap.S().Info("[REDIS] connection established")
	return rdb
}
