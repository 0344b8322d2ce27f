package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) FetchPlaces(ctx context.Context, query repository.PlaceQuery) ([]domain.Spot, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Spot), args.Error(1)
}

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) ReverseGeocode(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon, zoom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetAddress(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon, zoom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockCacheRepository) SetAddress(ctx context.Context, lat, lon float64, zoom int, addr *domain.Address, ttl time.Duration) error {
	args := m.Called(ctx, lat, lon, zoom, addr, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockCacheRepository) SetRoute(ctx context.Context, start, end domain.Coordinates, route *domain.Route, ttl time.Duration) error {
	args := m.Called(ctx, start, end, route, ttl)
	return args.Error(0)
}
