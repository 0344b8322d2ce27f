package mapengine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/mapengine"
	"github.com/memoria-radar/internal/mapengine/enginetest"
)

var plazaConstitucion = domain.Coordinates{Lat: -12.0651, Lon: -75.2049}

// readyController builds a controller already settled into Ready.
func readyController(engine *enginetest.FakeEngine) *mapengine.Controller {
	c := newController(engine, mapengine.ThemeStandard)
	engine.Fire(mapengine.EventLoad)
	engine.Fire(mapengine.EventIdle)
	return c
}

func TestProjectorProject(t *testing.T) {
	t.Run("returns false before the map is ready", func(t *testing.T) {
		engine := enginetest.New()
		c := newController(engine, mapengine.ThemeStandard)
		defer c.Close()
		p := mapengine.NewProjector(engine, c, zap.NewNop())

		_, ok := p.Project(-75.2049, -12.0651)
		assert.False(t, ok)
	})

	t.Run("projects once ready", func(t *testing.T) {
		engine := enginetest.New()
		c := readyController(engine)
		defer c.Close()
		p := mapengine.NewProjector(engine, c, zap.NewNop())

		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			return domain.Pixel{X: 100, Y: 200}, nil
		}

		px, ok := p.Project(-75.2049, -12.0651)
		assert.True(t, ok)
		assert.Equal(t, domain.Pixel{X: 100, Y: 200}, px)
	})

	t.Run("engine error is fail-closed", func(t *testing.T) {
		engine := enginetest.New()
		c := readyController(engine)
		defer c.Close()
		p := mapengine.NewProjector(engine, c, zap.NewNop())

		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			return domain.Pixel{}, errors.New("transform not initialized")
		}

		_, ok := p.Project(-75.2049, -12.0651)
		assert.False(t, ok)
	})

	t.Run("engine panic is fail-closed", func(t *testing.T) {
		engine := enginetest.New()
		c := readyController(engine)
		defer c.Close()
		p := mapengine.NewProjector(engine, c, zap.NewNop())

		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			panic("globe transform missing")
		}

		assert.NotPanics(t, func() {
			_, ok := p.Project(-75.2049, -12.0651)
			assert.False(t, ok)
		})
	})
}

func TestProjectorIsVisible(t *testing.T) {
	newVisibleSetup := func(centerLon float64) (*enginetest.FakeEngine, *mapengine.Projector, func()) {
		engine := enginetest.New()
		engine.CenterPos = domain.Coordinates{Lat: 0, Lon: centerLon}
		c := readyController(engine)
		p := mapengine.NewProjector(engine, c, zap.NewNop())
		// Project everything to the canvas center so only the hemisphere
		// test decides visibility.
		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			return domain.Pixel{X: 400, Y: 300}, nil
		}
		return engine, p, c.Close
	}

	t.Run("same longitude as camera center is visible", func(t *testing.T) {
		_, p, done := newVisibleSetup(0)
		defer done()
		assert.True(t, p.IsVisible(0, 0))
	})

	t.Run("exactly 90 degrees away is visible", func(t *testing.T) {
		_, p, done := newVisibleSetup(0)
		defer done()
		assert.True(t, p.IsVisible(90, 0))
		assert.True(t, p.IsVisible(-90, 0))
	})

	t.Run("more than 90 degrees away is hidden", func(t *testing.T) {
		_, p, done := newVisibleSetup(0)
		defer done()
		assert.False(t, p.IsVisible(90.5, 0))
		assert.False(t, p.IsVisible(180, 0))
	})

	t.Run("delta wraps across the antimeridian", func(t *testing.T) {
		_, p, done := newVisibleSetup(170)
		defer done()
		// 170 to -170 is 20 degrees the short way around.
		assert.True(t, p.IsVisible(-170, 0))
		// 170 to -10 is 180 degrees.
		assert.False(t, p.IsVisible(-10, 0))
	})

	t.Run("mercator skips the hemisphere test", func(t *testing.T) {
		engine, p, done := newVisibleSetup(0)
		defer done()
		engine.Proj = mapengine.ProjectionMercator
		assert.True(t, p.IsVisible(180, 0))
	})

	t.Run("off-canvas pixel is hidden", func(t *testing.T) {
		engine, p, done := newVisibleSetup(0)
		defer done()
		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			return domain.Pixel{X: -5, Y: 300}, nil
		}
		assert.False(t, p.IsVisible(0, 0))
	})

	t.Run("canvas edge is visible", func(t *testing.T) {
		engine, p, done := newVisibleSetup(0)
		defer done()
		engine.ProjectFn = func(lng, lat float64) (domain.Pixel, error) {
			return domain.Pixel{X: 800, Y: 600}, nil
		}
		assert.True(t, p.IsVisible(0, 0))
	})

	t.Run("not ready means not visible", func(t *testing.T) {
		engine := enginetest.New()
		c := newController(engine, mapengine.ThemeStandard)
		defer c.Close()
		p := mapengine.NewProjector(engine, c, zap.NewNop())

		assert.False(t, p.IsVisible(0, 0))
	})
}

func TestProjectorOnCameraChange(t *testing.T) {
	engine := enginetest.New()
	c := readyController(engine)
	defer c.Close()
	p := mapengine.NewProjector(engine, c, zap.NewNop())

	calls := 0
	off := p.OnCameraChange(func() { calls++ })

	engine.Fire(mapengine.EventMove)
	engine.Fire(mapengine.EventZoom)
	engine.Fire(mapengine.EventRotate)
	engine.Fire(mapengine.EventPitch)
	assert.Equal(t, 4, calls)

	off()
	engine.Fire(mapengine.EventMove)
	assert.Equal(t, 4, calls)
}
