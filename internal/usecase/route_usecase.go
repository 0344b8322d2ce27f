package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/usecase/dto"
)

// RouteUseCase - use case for driving routes between the visitor and a spot
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewRouteUseCase - create a new RouteUseCase. cacheRepo may be nil when the
// cache is disabled.
func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetRoute - resolve a driving route between two points
func (uc *RouteUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLon) ||
		!utils.ValidateCoordinates(req.EndLat, req.EndLon) {
		return nil, errors.ErrInvalidCoordinates
	}

	start := domain.Coordinates{Lat: req.StartLat, Lon: req.StartLon}
	end := domain.Coordinates{Lat: req.EndLat, Lon: req.EndLon}

	if uc.cacheRepo != nil {
		if route, err := uc.cacheRepo.GetRoute(ctx, start, end); err == nil && route != nil {
			return &dto.RouteResponse{Route: *route}, nil
		}
	}

	route, err := uc.routeRepo.GetRoute(ctx, start, end)
	if err != nil {
		uc.logger.Error("Failed to get route", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetRoute(ctx, start, end, route, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache route", zap.Error(err))
		}
	}

	return &dto.RouteResponse{Route: *route}, nil
}
