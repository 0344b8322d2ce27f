package repository

import (
	"context"

	"github.com/memoria-radar/internal/domain"
)

// GeocodeRepository is the reverse-geocoding collaborator. Responses are
// locale-sensitive; implementations send the configured Accept-Language and
// a descriptive client identifier.
type GeocodeRepository interface {
	// ReverseGeocode resolves the address hierarchy at a point. Higher zoom
	// yields a more specific hierarchy.
	ReverseGeocode(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error)
}
