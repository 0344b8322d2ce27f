package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filter"
	"github.com/memoria-radar/internal/filterbus"
	"github.com/memoria-radar/internal/mapengine"
)

// MapViewUseCase - orchestrates one map view: it subscribes to the shared
// filter bus, reruns the filter engine on every state change and hands the
// resulting marker set to the reconciler. Filter changes therefore reach the
// map without any marker teardown beyond what actually changed.
type MapViewUseCase struct {
	places     *PlacesUseCase
	bus        *filterbus.Bus
	lifecycle  *mapengine.Controller
	reconciler *mapengine.Reconciler
	logger     *zap.Logger

	mu          sync.Mutex
	searchTerm  string
	sortBy      domain.SortKey
	sortOrder   domain.SortOrder
	unsubscribe func()
	closed      bool
}

// NewMapViewUseCase - create a map view bound to the bus and the engine. The
// view refreshes itself on every bus publish until Close.
func NewMapViewUseCase(
	places *PlacesUseCase,
	bus *filterbus.Bus,
	lifecycle *mapengine.Controller,
	reconciler *mapengine.Reconciler,
	logger *zap.Logger,
) *MapViewUseCase {
	uc := &MapViewUseCase{
		places:     places,
		bus:        bus,
		lifecycle:  lifecycle,
		reconciler: reconciler,
		logger:     logger,
		sortBy:     domain.SortByName,
		sortOrder:  domain.SortAsc,
	}
	uc.unsubscribe = bus.Subscribe(func(domain.GlobalFilterState) {
		uc.Refresh(context.Background())
	})
	lifecycle.OnReady(func() {
		uc.Refresh(context.Background())
	})
	return uc
}

// Refresh - recompute the visible marker set from the current filter state
// and reconcile it against the map
func (uc *MapViewUseCase) Refresh(ctx context.Context) mapengine.SyncResult {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return mapengine.SyncResult{}
	}
	criteria := uc.criteriaLocked()
	uc.mu.Unlock()

	spots := uc.places.AllSpots(ctx)
	filtered := filter.Apply(spots, criteria)

	descs := make([]domain.MarkerDescriptor, 0, len(filtered))
	for _, spot := range filtered {
		if !spot.HasCoordinates() {
			continue
		}
		descs = append(descs, uc.describeSpot(spot))
	}

	result := uc.reconciler.Sync(descs)
	if result.Total() > 0 {
		uc.logger.Debug("Map view refreshed",
			zap.Int("markers", len(descs)),
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated),
			zap.Int("removed", result.Removed))
	}
	return result
}

// describeSpot builds the declarative marker for a spot. The spot itself is
// the marker content, so popups and labels render from the same data the
// list views use.
func (uc *MapViewUseCase) describeSpot(spot domain.Spot) domain.MarkerDescriptor {
	coords := *spot.Coordinates
	return domain.MarkerDescriptor{
		ID:          spot.ID,
		Coordinates: coords,
		Content:     spot,
		Popup: &domain.PopupSpec{
			Offset:   25,
			MaxWidth: "300px",
			Content:  spot,
		},
		Events: domain.MarkerEvents{
			OnClick: func() {
				uc.FocusSpot(coords)
			},
		},
	}
}

// SetSearchTerm - update the view-local search term and refresh
func (uc *MapViewUseCase) SetSearchTerm(ctx context.Context, term string) {
	uc.mu.Lock()
	uc.searchTerm = term
	uc.mu.Unlock()
	uc.Refresh(ctx)
}

// SetSort - update the view-local sort and refresh
func (uc *MapViewUseCase) SetSort(ctx context.Context, key domain.SortKey, order domain.SortOrder) {
	uc.mu.Lock()
	uc.sortBy = key
	uc.sortOrder = order
	uc.mu.Unlock()
	uc.Refresh(ctx)
}

// FocusSpot - fly the camera to a spot
func (uc *MapViewUseCase) FocusSpot(coords domain.Coordinates) {
	uc.lifecycle.FocusOn(coords)
}

// Title - the sidebar title for the current filter state
func (uc *MapViewUseCase) Title() string {
	return uc.bus.DynamicTitle()
}

// Close - detach from the bus; further refreshes are no-ops
func (uc *MapViewUseCase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	unsubscribe := uc.unsubscribe
	uc.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	uc.reconciler.Clear()
}

// criteriaLocked merges the shared bus state with the view-local search and
// sort. Callers hold uc.mu.
func (uc *MapViewUseCase) criteriaLocked() domain.FilterCriteria {
	state := uc.bus.GetState()

	criteria := domain.DefaultCriteria()
	criteria.SearchTerm = uc.searchTerm
	criteria.SortBy = uc.sortBy
	criteria.SortOrder = uc.sortOrder
	criteria.MentionedPlaces = state.MentionedPlaces
	criteria.FilterByMentionedPlaces = state.FilterByMentionedPlaces

	if state.IsActive && state.CurrentFilter != domain.ManualFilterAll {
		criteria.SelectedCategories = []domain.Category{domain.Category(state.CurrentFilter)}
	}

	return criteria
}
