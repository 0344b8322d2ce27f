package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/usecase"
	"github.com/memoria-radar/internal/usecase/dto"
)

func TestRouteUseCase_GetRoute(t *testing.T) {
	ctx := context.Background()
	req := dto.RouteRequest{
		StartLat: -12.0651, StartLon: -75.2049,
		EndLat: -12.0680, EndLon: -75.2102,
	}
	start := domain.Coordinates{Lat: req.StartLat, Lon: req.StartLon}
	end := domain.Coordinates{Lat: req.EndLat, Lon: req.EndLon}
	route := &domain.Route{
		Geometry:    []domain.Coordinates{start, end},
		DistanceKm:  1.23,
		DurationMin: 5,
	}

	t.Run("resolves and caches", func(t *testing.T) {
		mockRoute := &MockRouteRepository{}
		mockRoute.On("GetRoute", mock.Anything, start, end).Return(route, nil)
		mockCache := &MockCacheRepository{}
		mockCache.On("GetRoute", mock.Anything, start, end).Return(nil, nil)
		mockCache.On("SetRoute", mock.Anything, start, end, route, time.Hour).Return(nil)

		uc := usecase.NewRouteUseCase(mockRoute, mockCache, zap.NewNop(), time.Hour)
		resp, err := uc.GetRoute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1.23, resp.Route.DistanceKm)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips the upstream", func(t *testing.T) {
		mockRoute := &MockRouteRepository{}
		mockCache := &MockCacheRepository{}
		mockCache.On("GetRoute", mock.Anything, start, end).Return(route, nil)

		uc := usecase.NewRouteUseCase(mockRoute, mockCache, zap.NewNop(), time.Hour)
		resp, err := uc.GetRoute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 5, resp.Route.DurationMin)
		mockRoute.AssertNotCalled(t, "GetRoute")
	})

	t.Run("works without a cache", func(t *testing.T) {
		mockRoute := &MockRouteRepository{}
		mockRoute.On("GetRoute", mock.Anything, start, end).Return(route, nil)

		uc := usecase.NewRouteUseCase(mockRoute, nil, zap.NewNop(), time.Hour)
		resp, err := uc.GetRoute(ctx, req)

		require.NoError(t, err)
		assert.Len(t, resp.Route.Geometry, 2)
	})

	t.Run("no-route passes through", func(t *testing.T) {
		mockRoute := &MockRouteRepository{}
		mockRoute.On("GetRoute", mock.Anything, start, end).Return(nil, errors.ErrRouteNotFound)

		uc := usecase.NewRouteUseCase(mockRoute, nil, zap.NewNop(), time.Hour)
		_, err := uc.GetRoute(ctx, req)

		assert.ErrorIs(t, err, errors.ErrRouteNotFound)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		uc := usecase.NewRouteUseCase(&MockRouteRepository{}, nil, zap.NewNop(), time.Hour)
		_, err := uc.GetRoute(ctx, dto.RouteRequest{StartLat: 91})
		assert.Error(t, err)
	})
}
