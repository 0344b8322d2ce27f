package repository

import (
	"context"
	"time"

	"github.com/memoria-radar/internal/domain"
)

// CacheRepository caches upstream responses. Both external collaborators ask
// clients to cache aggressively; a miss is (nil, nil), never an error.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetAddress returns a cached reverse-geocode result for a point/zoom.
	GetAddress(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error)

	// SetAddress caches a reverse-geocode result.
	SetAddress(ctx context.Context, lat, lon float64, zoom int, addr *domain.Address, ttl time.Duration) error

	// GetRoute returns a cached route between two points.
	GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error)

	// SetRoute caches a route.
	SetRoute(ctx context.Context, start, end domain.Coordinates, route *domain.Route, ttl time.Duration) error
}
