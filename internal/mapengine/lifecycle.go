package mapengine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
)

// State is the readiness of the managed map instance.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded // engine load fired, style still settling
	StateReady  // style settled, markers and layers may render
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

const focusZoom = 17

// Controller owns the map instance's readiness gating and style swapping.
// Style replacement is always diff-based; marker bindings survive a theme
// change untouched.
type Controller struct {
	engine Engine
	cfg    config.MapConfig
	logger *zap.Logger

	mu          sync.Mutex
	state       State
	styleLoaded bool
	theme       Theme
	scheme      ColorScheme
	current     Style
	overLimit   bool
	settleTimer *time.Timer
	offs        []func()
	closed      bool

	onReady []func()
}

// NewController attaches to an engine and begins loading with the given
// theme. The engine is expected to be freshly constructed.
func NewController(engine Engine, cfg config.MapConfig, theme Theme, scheme ColorScheme, logger *zap.Logger) *Controller {
	c := &Controller{
		engine: engine,
		cfg:    cfg,
		logger: logger,
		state:  StateLoading,
		theme:  theme,
		scheme: scheme,
	}

	c.current = StyleFor(theme, scheme)
	engine.SetStyle(c.current, false)

	c.offs = append(c.offs,
		engine.On(EventLoad, c.handleLoad),
		engine.On(EventStyleData, c.handleStyleData),
		engine.On(EventIdle, c.handleIdle),
		engine.On(EventZoom, c.handleZoom),
	)

	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Ready reports whether markers and layers may render.
func (c *Controller) Ready() bool {
	return c.State() == StateReady
}

// OnReady registers a callback fired each time the controller transitions
// into Ready, including after style swaps.
func (c *Controller) OnReady(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReady = append(c.onReady, fn)
}

// handleLoad promotes out of Loading. The engine does not guarantee event
// ordering: the style may have settled before load fires, in which case load
// completes the transition to Ready itself.
func (c *Controller) handleLoad() {
	c.mu.Lock()
	if c.closed || c.state != StateLoading {
		c.mu.Unlock()
		return
	}
	c.state = StateLoaded
	becameReady := c.styleLoaded
	if becameReady {
		c.state = StateReady
	}
	callbacks := append([]func(){}, c.onReady...)
	c.mu.Unlock()

	c.logger.Debug("map loaded")
	if becameReady {
		c.logger.Debug("style already settled, map ready")
		for _, fn := range callbacks {
			fn()
		}
	}
}

// handleStyleData marks the style as unsettled and arms the settle timer.
// The engine's idle signal settles sooner when it arrives; the timer is the
// fallback for engines that never report idle. The fixed delay is a
// workaround for layer operations racing an in-flight style application.
func (c *Controller) handleStyleData() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.styleLoaded = false
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	c.settleTimer = time.AfterFunc(c.cfg.StyleSettleDelay, c.settle)
	c.mu.Unlock()
}

func (c *Controller) handleIdle() {
	c.settle()
}

func (c *Controller) settle() {
	c.mu.Lock()
	if c.closed || c.styleLoaded {
		c.mu.Unlock()
		return
	}
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
	c.styleLoaded = true
	becameReady := false
	if c.state == StateLoaded || c.state == StateReady {
		becameReady = c.state != StateReady
		c.state = StateReady
	}
	callbacks := append([]func(){}, c.onReady...)
	c.mu.Unlock()

	if becameReady {
		c.logger.Debug("style settled, map ready")
		for _, fn := range callbacks {
			fn()
		}
	}
}

// SetTheme switches the basemap. The swap is diff-based so the engine patches
// the running style instead of tearing it down, preserving marker bindings.
func (c *Controller) SetTheme(theme Theme, scheme ColorScheme) {
	c.mu.Lock()
	c.theme = theme
	c.scheme = scheme
	c.mu.Unlock()
	c.applyStyle()
}

// handleZoom enforces the raster fallback: above the configured zoom limit
// satellite/hybrid degrade, so the standard vector style is substituted until
// the camera drops back below. Transparent to marker bindings.
func (c *Controller) handleZoom() {
	over := c.engine.Zoom() > c.cfg.RasterZoomLimit

	c.mu.Lock()
	changed := over != c.overLimit
	c.overLimit = over
	c.mu.Unlock()

	if changed {
		c.applyStyle()
	}
}

func (c *Controller) applyStyle() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	theme := c.theme
	if c.overLimit && (theme == ThemeSatellite || theme == ThemeHybrid) {
		theme = ThemeStandard
	}
	next := StyleFor(theme, c.scheme)
	if next.Name == c.current.Name {
		c.mu.Unlock()
		return
	}
	c.current = next
	c.styleLoaded = false
	if c.state == StateReady {
		c.state = StateLoaded
	}
	c.mu.Unlock()

	c.logger.Debug("swapping style", zap.String("style", next.Name))
	c.engine.SetStyle(next, true)
}

// CurrentStyle returns the style currently applied, after any raster
// fallback substitution.
func (c *Controller) CurrentStyle() Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// FocusOn flies the camera to a selected spot, padded so the detail panel
// does not cover the marker.
func (c *Controller) FocusOn(coords domain.Coordinates) {
	if !c.Ready() {
		return
	}
	c.engine.FlyTo(CameraOptions{
		Center:  coords,
		Zoom:    focusZoom,
		Padding: Padding{Top: 300},
		Speed:   1.2,
		Curve:   1.42,
	})
}

// EaseTo centers the camera without changing zoom, for the initial
// user-location fix.
func (c *Controller) EaseTo(coords domain.Coordinates, durationMS int) {
	c.engine.EaseTo(CameraOptions{
		Center:   coords,
		Duration: durationMS,
	})
}

// Close releases the engine instance and resets readiness. Safe to call more
// than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.state = StateUninitialized
	c.styleLoaded = false
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
	offs := c.offs
	c.offs = nil
	c.mu.Unlock()

	for _, off := range offs {
		off()
	}
	c.engine.Remove()
	c.logger.Debug("map controller closed")
}
