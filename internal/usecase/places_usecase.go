package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/filter"
	"github.com/memoria-radar/internal/infrastructure/placesapi"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/pkg/validator"
	"github.com/memoria-radar/internal/usecase/dto"
)

// PlacesUseCase - use case for listing, creating and deleting spots. The
// backend is the source of truth; when it is unreachable the bundled local
// dataset keeps the map populated. Spots created here live in memory on top
// of whatever source answered.
type PlacesUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger

	mu      sync.RWMutex
	custom  []domain.Spot
	deleted map[string]bool
}

// NewPlacesUseCase - create a new PlacesUseCase
func NewPlacesUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlacesUseCase {
	return &PlacesUseCase{
		placeRepo: placeRepo,
		logger:    logger,
		deleted:   make(map[string]bool),
	}
}

// ListPlaces - fetch, filter and sort the place collection
func (uc *PlacesUseCase) ListPlaces(ctx context.Context, req dto.ListPlacesRequest) (*dto.ListPlacesResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	criteria, err := buildCriteria(req)
	if err != nil {
		return nil, err
	}

	spots, source := uc.fetchAll(ctx, repository.PlaceQuery{
		Categories: criteria.SelectedCategories,
		Search:     criteria.SearchTerm,
	})

	filtered := filter.Apply(spots, criteria)

	return &dto.ListPlacesResponse{
		Places: filtered,
		Stats:  filter.ComputeStats(spots, filtered, criteria),
		Title:  listTitle(criteria),
		Source: source,
	}, nil
}

// CreatePlace - register a new place or event
func (uc *PlacesUseCase) CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (*dto.PlaceResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	category := domain.Category(req.Category)
	if !category.Valid() {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
		})
	}

	// Both coordinates or neither. A spot without them stays in list views
	// but never reaches the map.
	var coords *domain.Coordinates
	if req.Lat != nil || req.Lon != nil {
		if req.Lat == nil || req.Lon == nil || !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		coords = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	}

	spot := domain.Spot{
		ID:          uuid.New().String(),
		Kind:        domain.SpotPlace,
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Coordinates: coords,
		ImageURL:    req.ImageURL,
		Color:       req.Color,
		CreatedAt:   time.Now(),
	}
	if spot.Color == "" {
		spot.Color = domain.DefaultMarkerColor
	}
	if req.EventDate != "" {
		date, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"event_date": req.EventDate,
			})
		}
		spot.Kind = domain.SpotEvent
		spot.EventDate = date
	}

	uc.mu.Lock()
	uc.custom = append(uc.custom, spot)
	uc.mu.Unlock()

	uc.logger.Info("Place created",
		zap.String("id", spot.ID),
		zap.String("name", spot.Name),
		zap.String("category", string(spot.Category)))

	return &dto.PlaceResponse{Place: spot}, nil
}

// DeletePlace - remove a spot from the collection by id
func (uc *PlacesUseCase) DeletePlace(ctx context.Context, id string) error {
	uc.mu.Lock()
	for i, spot := range uc.custom {
		if spot.ID == id {
			uc.custom = append(uc.custom[:i], uc.custom[i+1:]...)
			uc.mu.Unlock()
			uc.logger.Info("Place deleted", zap.String("id", id))
			return nil
		}
	}
	uc.mu.Unlock()

	spots, _ := uc.fetchAll(ctx, repository.PlaceQuery{})
	for _, spot := range spots {
		if spot.ID == id {
			uc.mu.Lock()
			uc.deleted[id] = true
			uc.mu.Unlock()
			uc.logger.Info("Place deleted", zap.String("id", id))
			return nil
		}
	}

	return errors.ErrPlaceNotFound.WithDetails(map[string]interface{}{"id": id})
}

// Suggest - search completions for a partial term
func (uc *PlacesUseCase) Suggest(ctx context.Context, term string) (*dto.SuggestionsResponse, error) {
	spots, _ := uc.fetchAll(ctx, repository.PlaceQuery{})
	return &dto.SuggestionsResponse{Suggestions: filter.Suggestions(spots, term)}, nil
}

// KnownNames - names of every spot currently in the collection
func (uc *PlacesUseCase) KnownNames(ctx context.Context) []string {
	spots, _ := uc.fetchAll(ctx, repository.PlaceQuery{})
	names := make([]string, 0, len(spots))
	for _, spot := range spots {
		names = append(names, spot.Name)
	}
	return names
}

// AllSpots - the full merged collection without filtering
func (uc *PlacesUseCase) AllSpots(ctx context.Context) []domain.Spot {
	spots, _ := uc.fetchAll(ctx, repository.PlaceQuery{})
	return spots
}

// fetchAll queries the backend and falls back to the local dataset on any
// error, then overlays in-memory creations and deletions.
func (uc *PlacesUseCase) fetchAll(ctx context.Context, query repository.PlaceQuery) ([]domain.Spot, string) {
	source := dto.SourceBackend
	spots, err := uc.placeRepo.FetchPlaces(ctx, query)
	if err != nil {
		uc.logger.Warn("Backend unavailable, using local dataset", zap.Error(err))
		spots = placesapi.LocalPlaces()
		source = dto.SourceLocal
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	merged := make([]domain.Spot, 0, len(spots)+len(uc.custom))
	for _, spot := range spots {
		if !uc.deleted[spot.ID] {
			merged = append(merged, spot)
		}
	}
	merged = append(merged, uc.custom...)

	return merged, source
}

func buildCriteria(req dto.ListPlacesRequest) (domain.FilterCriteria, error) {
	criteria := domain.DefaultCriteria()
	criteria.SearchTerm = req.Search
	criteria.MentionedPlaces = req.MentionedPlaces
	criteria.FilterByMentionedPlaces = len(req.MentionedPlaces) > 0

	for _, raw := range req.Categories {
		category := domain.Category(raw)
		if !category.Valid() {
			return criteria, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": raw,
			})
		}
		criteria.SelectedCategories = append(criteria.SelectedCategories, category)
	}

	if req.SortBy != "" {
		criteria.SortBy = domain.SortKey(req.SortBy)
	}
	if req.SortOrder != "" {
		criteria.SortOrder = domain.SortOrder(req.SortOrder)
	}

	return criteria, nil
}

func listTitle(criteria domain.FilterCriteria) string {
	if criteria.FilterByMentionedPlaces {
		return "Lugares Mencionados"
	}
	if len(criteria.SelectedCategories) == 1 {
		return criteria.SelectedCategories[0].Title()
	}
	return domain.DefaultTitle
}
