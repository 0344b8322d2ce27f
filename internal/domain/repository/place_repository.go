package repository

import (
	"context"

	"github.com/memoria-radar/internal/domain"
)

// PlaceQuery narrows a place-list fetch. Categories are UI-side ids; the
// client translates them to backend ids at the boundary.
type PlaceQuery struct {
	Categories []domain.Category
	Search     string
}

// PlaceRepository fetches the place collection from the backend collaborator.
type PlaceRepository interface {
	// FetchPlaces returns the mapped place list for the query.
	FetchPlaces(ctx context.Context, query PlaceQuery) ([]domain.Spot, error)
}
