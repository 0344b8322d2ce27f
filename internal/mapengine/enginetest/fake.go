// Package enginetest provides a scripted in-memory map engine for tests. It
// records every native call so tests can assert how many calls a binding
// layer actually issued.
package enginetest

import (
	"fmt"
	"sync"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/mapengine"
)

// FakeEngine implements mapengine.Engine. Events fire synchronously through
// Fire; camera state is plain fields tests may set directly before use.
type FakeEngine struct {
	mu sync.Mutex

	CenterPos  domain.Coordinates
	ZoomLevel  float64
	Canvas     domain.CanvasSize
	Proj       mapengine.ProjectionType
	Markers    []*FakeMarker
	Styles     []mapengine.Style
	StyleDiffs []bool
	FlyCalls   []mapengine.CameraOptions
	EaseCalls  []mapengine.CameraOptions
	Removed    bool

	// ProjectFn overrides projection; nil means a fixed linear mapping.
	ProjectFn func(lng, lat float64) (domain.Pixel, error)

	handlers map[mapengine.EventType][]*handler
	nextID   int
}

type handler struct {
	id int
	fn func()
}

func New() *FakeEngine {
	return &FakeEngine{
		Canvas:   domain.CanvasSize{Width: 800, Height: 600},
		Proj:     mapengine.ProjectionGlobe,
		handlers: make(map[mapengine.EventType][]*handler),
	}
}

func (e *FakeEngine) Project(lng, lat float64) (domain.Pixel, error) {
	if e.ProjectFn != nil {
		return e.ProjectFn(lng, lat)
	}
	return domain.Pixel{X: lng + 400, Y: lat + 300}, nil
}

func (e *FakeEngine) Center() domain.Coordinates       { return e.CenterPos }
func (e *FakeEngine) Zoom() float64                    { return e.ZoomLevel }
func (e *FakeEngine) CanvasSize() domain.CanvasSize    { return e.Canvas }
func (e *FakeEngine) Projection() mapengine.ProjectionType { return e.Proj }

func (e *FakeEngine) SetProjection(p mapengine.ProjectionType) { e.Proj = p }

func (e *FakeEngine) SetStyle(style mapengine.Style, diff bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Styles = append(e.Styles, style)
	e.StyleDiffs = append(e.StyleDiffs, diff)
}

func (e *FakeEngine) EaseTo(opts mapengine.CameraOptions) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.EaseCalls = append(e.EaseCalls, opts)
}

func (e *FakeEngine) FlyTo(opts mapengine.CameraOptions) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.FlyCalls = append(e.FlyCalls, opts)
}

func (e *FakeEngine) AddMarker(opts mapengine.MarkerOptions) mapengine.MarkerHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := &FakeMarker{
		Coords:       opts.Coordinates,
		Draggable:    opts.Draggable,
		MarkerOffset: opts.Offset,
		Angle:        opts.Rotation,
		RotAlign:     opts.RotationAlignment,
		PitchAlign:   opts.PitchAlignment,
	}
	e.Markers = append(e.Markers, m)
	return m
}

func (e *FakeEngine) On(event mapengine.EventType, fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	h := &handler{id: e.nextID, fn: fn}
	e.handlers[event] = append(e.handlers[event], h)
	id := h.id
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		list := e.handlers[event]
		for i, cand := range list {
			if cand.id == id {
				e.handlers[event] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Fire invokes every handler registered for the event, synchronously.
func (e *FakeEngine) Fire(event mapengine.EventType) {
	e.mu.Lock()
	list := make([]*handler, len(e.handlers[event]))
	copy(list, e.handlers[event])
	e.mu.Unlock()
	for _, h := range list {
		h.fn()
	}
}

func (e *FakeEngine) Remove() { e.Removed = true }

// LiveMarkers returns markers that have not been removed.
func (e *FakeEngine) LiveMarkers() []*FakeMarker {
	e.mu.Lock()
	defer e.mu.Unlock()
	var live []*FakeMarker
	for _, m := range e.Markers {
		if !m.RemovedFlag {
			live = append(live, m)
		}
	}
	return live
}

// NativeCalls sums the setter calls issued across all markers. A second
// reconciliation of an unchanged set must leave this untouched.
func (e *FakeEngine) NativeCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, m := range e.Markers {
		total += m.SetterCalls
	}
	return total
}

// FakeMarker implements mapengine.MarkerHandle.
type FakeMarker struct {
	Coords       domain.Coordinates
	Draggable    bool
	MarkerOffset domain.Offset
	Angle        float64
	RotAlign     domain.Alignment
	PitchAlign   domain.Alignment
	Content      domain.MarkerContent
	Popup        *FakePopup
	RemovedFlag  bool

	// SetterCalls counts every native mutation after construction.
	SetterCalls int
	ContentSets int
}

func (m *FakeMarker) LngLat() domain.Coordinates { return m.Coords }
func (m *FakeMarker) SetLngLat(c domain.Coordinates) {
	m.Coords = c
	m.SetterCalls++
}

func (m *FakeMarker) IsDraggable() bool { return m.Draggable }
func (m *FakeMarker) SetDraggable(d bool) {
	m.Draggable = d
	m.SetterCalls++
}

func (m *FakeMarker) Offset() domain.Offset { return m.MarkerOffset }
func (m *FakeMarker) SetOffset(o domain.Offset) {
	m.MarkerOffset = o
	m.SetterCalls++
}

func (m *FakeMarker) Rotation() float64 { return m.Angle }
func (m *FakeMarker) SetRotation(r float64) {
	m.Angle = r
	m.SetterCalls++
}

func (m *FakeMarker) RotationAlignment() domain.Alignment { return m.RotAlign }
func (m *FakeMarker) SetRotationAlignment(a domain.Alignment) {
	m.RotAlign = a
	m.SetterCalls++
}

func (m *FakeMarker) PitchAlignment() domain.Alignment { return m.PitchAlign }
func (m *FakeMarker) SetPitchAlignment(a domain.Alignment) {
	m.PitchAlign = a
	m.SetterCalls++
}

func (m *FakeMarker) SetContent(c domain.MarkerContent) {
	m.Content = c
	m.SetterCalls++
	m.ContentSets++
}

func (m *FakeMarker) AttachPopup(spec domain.PopupSpec) mapengine.PopupHandle {
	if m.Popup != nil && !m.Popup.RemovedFlag {
		panic(fmt.Sprintf("marker already has a popup (offset %v)", m.Popup.PopupOffset))
	}
	m.Popup = &FakePopup{
		PopupOffset: spec.Offset,
		MaxWidthVal: spec.MaxWidth,
		Content:     spec.Content,
	}
	return m.Popup
}

func (m *FakeMarker) Remove() { m.RemovedFlag = true }

// FakePopup implements mapengine.PopupHandle.
type FakePopup struct {
	PopupOffset float64
	MaxWidthVal string
	Content     domain.MarkerContent
	Open        bool
	RemovedFlag bool
	SetterCalls int
}

func (p *FakePopup) IsOpen() bool { return p.Open }
func (p *FakePopup) SetOffset(o float64) {
	p.PopupOffset = o
	p.SetterCalls++
}
func (p *FakePopup) SetMaxWidth(w string) {
	p.MaxWidthVal = w
	p.SetterCalls++
}
func (p *FakePopup) SetContent(c domain.MarkerContent) {
	p.Content = c
	p.SetterCalls++
}
func (p *FakePopup) Remove() { p.RemovedFlag = true }
