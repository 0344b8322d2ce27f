package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filterbus"
	"github.com/memoria-radar/internal/mapengine"
	"github.com/memoria-radar/internal/mapengine/enginetest"
	"github.com/memoria-radar/internal/usecase"
)

type mapViewFixture struct {
	engine *enginetest.FakeEngine
	bus    *filterbus.Bus
	view   *usecase.MapViewUseCase
}

func newMapViewFixture(t *testing.T) *mapViewFixture {
	t.Helper()

	mockRepo := &MockPlaceRepository{}
	// A fresh copy per call: real fetches allocate new coordinate pointers
	// every time, and the view must not treat that as changed content.
	call := mockRepo.On("FetchPlaces", mock.Anything, mock.Anything)
	call.Run(func(args mock.Arguments) {
		call.ReturnArguments = mock.Arguments{backendSpots(), nil}
	})
	places := usecase.NewPlacesUseCase(mockRepo, zap.NewNop())

	engine := enginetest.New()
	cfg := config.MapConfig{StyleSettleDelay: 20 * time.Millisecond, RasterZoomLimit: 16}
	lifecycle := mapengine.NewController(engine, cfg, mapengine.ThemeStandard, mapengine.SchemeLight, zap.NewNop())
	reconciler := mapengine.NewReconciler(engine, zap.NewNop())
	bus := filterbus.New()

	view := usecase.NewMapViewUseCase(places, bus, lifecycle, reconciler, zap.NewNop())
	t.Cleanup(func() {
		view.Close()
		lifecycle.Close()
	})

	engine.Fire(mapengine.EventLoad)
	engine.Fire(mapengine.EventIdle)

	return &mapViewFixture{engine: engine, bus: bus, view: view}
}

func TestMapViewUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("renders every spot with coordinates once ready", func(t *testing.T) {
		f := newMapViewFixture(t)
		assert.Len(t, f.engine.LiveMarkers(), 3)
	})

	t.Run("bus category filter narrows the marker set in place", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.bus.SetManualFilter(domain.CategoryMercados)
		assert.Empty(t, f.engine.LiveMarkers())

		// Toggling the same category back off restores everything.
		f.bus.SetManualFilter(domain.CategoryMercados)
		assert.Len(t, f.engine.LiveMarkers(), 3)
	})

	t.Run("mentioned-places filter narrows to the mentions", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.bus.SetMentionedPlacesFilter("Parque Constitución", "Plaza Huamanmarca")
		assert.Len(t, f.engine.LiveMarkers(), 2)
		assert.Equal(t, "Lugares Mencionados", f.view.Title())

		f.bus.ClearMentionedPlacesFilter()
		assert.Len(t, f.engine.LiveMarkers(), 3)
		assert.Equal(t, domain.DefaultTitle, f.view.Title())
	})

	t.Run("view-local search composes with bus state", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.view.SetSearchTerm(ctx, "cerrito")
		live := f.engine.LiveMarkers()
		require.Len(t, live, 1)
		spot, ok := live[0].Content.(domain.Spot)
		require.True(t, ok)
		assert.Equal(t, "Cerrito de la Libertad", spot.Name)
	})

	t.Run("refresh of an unchanged view issues no native calls", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.view.Refresh(ctx)
		before := f.engine.NativeCalls()
		result := f.view.Refresh(ctx)

		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 0, result.Removed)
		assert.Equal(t, before, f.engine.NativeCalls())
	})

	t.Run("marker click flies to the spot", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.view.FocusSpot(domain.Coordinates{Lat: -12.0672, Lon: -75.2103})
		require.Len(t, f.engine.FlyCalls, 1)
		assert.Equal(t, 17.0, f.engine.FlyCalls[0].Zoom)
	})

	t.Run("close detaches from the bus", func(t *testing.T) {
		f := newMapViewFixture(t)

		f.view.Close()
		assert.Empty(t, f.engine.LiveMarkers())

		f.bus.SetManualFilter(domain.CategoryParques)
		assert.Empty(t, f.engine.LiveMarkers())
	})
}
