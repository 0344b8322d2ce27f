package repository

import (
	"context"

	"github.com/memoria-radar/internal/domain"
)

// RouteRepository is the driving-directions collaborator.
type RouteRepository interface {
	// GetRoute returns the route geometry plus distance and duration between
	// two points.
	GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error)
}
