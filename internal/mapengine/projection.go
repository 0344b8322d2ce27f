package mapengine

import (
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/pkg/utils"
)

// Projector converts geographic coordinates to screen space and answers
// visibility questions under the current camera. All failures are fail-closed:
// a point whose projection cannot be computed is reported as not visible and
// nothing propagates to the caller.
type Projector struct {
	engine    Engine
	lifecycle *Controller
	logger    *zap.Logger
}

func NewProjector(engine Engine, lifecycle *Controller, logger *zap.Logger) *Projector {
	return &Projector{
		engine:    engine,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// Project returns the canvas pixel for a point, or false when the map is not
// ready or the engine fails.
func (p *Projector) Project(lng, lat float64) (pixel domain.Pixel, ok bool) {
	if p.lifecycle != nil && !p.lifecycle.Ready() {
		return domain.Pixel{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("projection panicked", zap.Any("cause", r))
			pixel, ok = domain.Pixel{}, false
		}
	}()

	px, err := p.engine.Project(lng, lat)
	if err != nil {
		p.logger.Debug("projection failed", zap.Float64("lng", lng), zap.Float64("lat", lat), zap.Error(err))
		return domain.Pixel{}, false
	}
	return px, true
}

// IsVisible reports whether a point is on screen: its projected pixel must
// fall inside the canvas, and under a globe projection the point must sit in
// the front hemisphere relative to the camera center.
func (p *Projector) IsVisible(lng, lat float64) (visible bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("visibility check panicked", zap.Any("cause", r))
			visible = false
		}
	}()

	px, ok := p.Project(lng, lat)
	if !ok {
		return false
	}

	canvas := p.engine.CanvasSize()
	inViewport := px.X >= 0 && px.X <= canvas.Width &&
		px.Y >= 0 && px.Y <= canvas.Height
	if !inViewport {
		return false
	}

	if p.engine.Projection() == ProjectionGlobe {
		// Points more than 90° of longitude from the camera center are on
		// the far hemisphere regardless of their screen projection. Exactly
		// 90° counts as visible.
		center := p.engine.Center()
		if utils.LongitudeDelta(lng, center.Lon) > 90 {
			return false
		}
	}

	return true
}

// OnCameraChange re-runs fn on every camera event. Rotate and pitch are
// included deliberately: some projections shift the center through them,
// which moves the hemisphere boundary. Returns a detach func.
func (p *Projector) OnCameraChange(fn func()) func() {
	offs := []func(){
		p.engine.On(EventMove, fn),
		p.engine.On(EventZoom, fn),
		p.engine.On(EventRotate, fn),
		p.engine.On(EventPitch, fn),
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}
