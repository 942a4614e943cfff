package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 2 * time.Second

// NewRedisClient подключается к Redis для кеша справочников.
// Если адрес не задан или Redis не отвечает, возвращает nil: консоль работает без кеша.
func NewRedisClient(ctx context.Context, addr, password string, db int, logger *zap.Logger) *redis.Client {
	if addr == "" {
		logger.Info("Redis is not configured, lookup cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis is unavailable, lookup cache disabled",
			zap.String("addr", addr),
			zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("✅ Connected to Redis", zap.String("addr", addr), zap.Int("db", db))
	return client
}
