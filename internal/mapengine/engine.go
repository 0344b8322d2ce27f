// Package mapengine wraps the native map engine behind declarative bindings:
// a projection adapter with globe-aware visibility, a marker reconciler that
// keeps native objects in sync with descriptors, and a lifecycle controller
// gating readiness and style swaps. Native objects never leak past this
// package.
package mapengine

import "github.com/memoria-radar/internal/domain"

// EventType names a native engine event.
type EventType string

const (
	EventLoad      EventType = "load"
	EventStyleData EventType = "styledata"
	EventIdle      EventType = "idle"
	EventMove      EventType = "move"
	EventZoom      EventType = "zoom"
	EventRotate    EventType = "rotate"
	EventPitch     EventType = "pitch"
)

// ProjectionType selects the camera projection mode.
type ProjectionType string

const (
	ProjectionMercator ProjectionType = "mercator"
	ProjectionGlobe    ProjectionType = "globe"
)

// CameraOptions parameterizes an animated camera move.
type CameraOptions struct {
	Center   domain.Coordinates
	Zoom     float64
	Padding  Padding
	Duration int // ms
	Speed    float64
	Curve    float64
}

// Padding shifts the camera focus point, in pixels.
type Padding struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// MarkerOptions is the native-side construction state of a marker.
type MarkerOptions struct {
	Coordinates       domain.Coordinates
	Draggable         bool
	Offset            domain.Offset
	Rotation          float64
	RotationAlignment domain.Alignment
	PitchAlignment    domain.Alignment
	Events            domain.MarkerEvents
}

// MarkerHandle is the native marker object. Setters mutate native state;
// getters return the last-known native values so callers can diff before
// issuing a call.
type MarkerHandle interface {
	LngLat() domain.Coordinates
	SetLngLat(domain.Coordinates)
	IsDraggable() bool
	SetDraggable(bool)
	Offset() domain.Offset
	SetOffset(domain.Offset)
	Rotation() float64
	SetRotation(float64)
	RotationAlignment() domain.Alignment
	SetRotationAlignment(domain.Alignment)
	PitchAlignment() domain.Alignment
	SetPitchAlignment(domain.Alignment)

	// SetContent attaches the visual payload to the native element. Content
	// replacement does not recreate the marker.
	SetContent(domain.MarkerContent)

	// AttachPopup creates the marker popup; at most one per marker.
	AttachPopup(spec domain.PopupSpec) PopupHandle

	Remove()
}

// PopupHandle is a native popup bound to a marker.
type PopupHandle interface {
	IsOpen() bool
	SetOffset(float64)
	SetMaxWidth(string)
	SetContent(domain.MarkerContent)
	Remove()
}

// Engine is the native map engine the adapter layers delegate to. The real
// implementation lives in the embedding shell; tests use a scripted fake.
type Engine interface {
	// Project converts geographic coordinates to canvas pixels under the
	// current camera transform. The result is undefined before the map has
	// loaded; callers must gate on the lifecycle controller.
	Project(lng, lat float64) (domain.Pixel, error)

	Center() domain.Coordinates
	Zoom() float64
	CanvasSize() domain.CanvasSize
	Projection() ProjectionType
	SetProjection(ProjectionType)

	// SetStyle replaces the style. With diff the engine patches the current
	// style in place instead of tearing it down.
	SetStyle(style Style, diff bool)

	EaseTo(CameraOptions)
	FlyTo(CameraOptions)

	AddMarker(MarkerOptions) MarkerHandle

	// On registers an event callback and returns its detach func.
	On(event EventType, fn func()) func()

	// Remove releases the native instance.
	Remove()
}
