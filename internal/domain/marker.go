package domain

// Alignment controls how a marker rotates with the camera.
type Alignment string

const (
	AlignmentAuto     Alignment = "auto"
	AlignmentMap      Alignment = "map"
	AlignmentViewport Alignment = "viewport"
)

// Offset is a marker anchor displacement in pixels.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarkerContent is the opaque visual payload of a marker. The engine attaches
// it to the native element without the binding layer ever inspecting it, so a
// content swap never forces marker recreation.
type MarkerContent interface{}

// PopupSpec describes a popup attached to a marker. A nil spec means the
// marker has no popup.
type PopupSpec struct {
	Offset   float64
	MaxWidth string
	Content  MarkerContent
}

// MarkerEvents carries the interaction callbacks of a descriptor. Drag
// callbacks receive plain coordinates; native event objects never cross this
// boundary.
type MarkerEvents struct {
	OnClick      func()
	OnMouseEnter func()
	OnMouseLeave func()
	OnDragStart  func(Coordinates)
	OnDrag       func(Coordinates)
	OnDragEnd    func(Coordinates)
}

// MarkerDescriptor is the declarative description of one marker. The
// reconciler owns the pairing of descriptor id to native handle; exactly one
// native marker exists per live id.
type MarkerDescriptor struct {
	ID                string
	Coordinates       Coordinates
	Content           MarkerContent
	Draggable         bool
	Offset            Offset
	Rotation          float64
	RotationAlignment Alignment
	PitchAlignment    Alignment
	Popup             *PopupSpec
	Events            MarkerEvents
}
