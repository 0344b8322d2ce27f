package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// addressKey truncates coordinates to five decimals (about one meter) so
// nearby lookups share cache entries.
func addressKey(lat, lon float64, zoom int) string {
	return fmt.Sprintf("geocode:%.5f:%.5f:%d", lat, lon, zoom)
}

func routeKey(start, end domain.Coordinates) string {
	return fmt.Sprintf("route:%.5f:%.5f:%.5f:%.5f", start.Lat, start.Lon, end.Lat, end.Lon)
}

func (r *cacheRepository) GetAddress(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error) {
	data, err := r.Get(ctx, addressKey(lat, lon, zoom))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var addr domain.Address
	if err := json.Unmarshal(data, &addr); err != nil {
		r.logger.Error("Failed to unmarshal address from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}

	return &addr, nil
}

func (r *cacheRepository) SetAddress(ctx context.Context, lat, lon float64, zoom int, addr *domain.Address, ttl time.Duration) error {
	data, err := json.Marshal(addr)
	if err != nil {
		r.logger.Error("Failed to marshal address", zap.Error(err))
		return fmt.Errorf("marshal address: %w", err)
	}

	return r.Set(ctx, addressKey(lat, lon, zoom), data, ttl)
}

func (r *cacheRepository) GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error) {
	data, err := r.Get(ctx, routeKey(start, end))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to unmarshal route from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	return &route, nil
}

func (r *cacheRepository) SetRoute(ctx context.Context, start, end domain.Coordinates, route *domain.Route, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal route", zap.Error(err))
		return fmt.Errorf("marshal route: %w", err)
	}

	return r.Set(ctx, routeKey(start, end), data, ttl)
}
