package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ключи справочников в кеше
const (
	LookupRoomCategories = "room_categories"
	LookupPaymentMethods = "payment_methods"
)

// LookupCache кеширует редко меняющиеся справочники в Redis.
// nil-кеш (или кеш без клиента) просто вызывает загрузчик.
type LookupCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// NewLookupCache создаёт кеш справочников
func NewLookupCache(rdb *redis.Client, ttl time.Duration, prefix string, logger *zap.Logger) *LookupCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if prefix == "" {
		prefix = "hotel_console"
	}
	return &LookupCache{rdb: rdb, ttl: ttl, prefix: prefix, logger: logger}
}

func (lc *LookupCache) key(name string) string {
	return lc.prefix + ":lookup:" + name
}

// Fetch возвращает справочник из кеша или загружает его и кладёт в кеш
func (lc *LookupCache) Fetch(ctx context.Context, name string, load func(context.Context) ([]model.Lookup, error)) ([]model.Lookup, error) {
	if lc == nil || lc.rdb == nil {
		return load(ctx)
	}

	key := lc.key(name)
	cached, err := lc.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []model.Lookup
		if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
			return items, nil
		}
		lc.logger.Warn("Broken lookup cache entry, reloading", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		lc.logger.Warn("Lookup cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return items, nil
	}
	if err := lc.rdb.Set(ctx, key, payload, lc.ttl).Err(); err != nil {
		lc.logger.Warn("Lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}
