package mapengine

import (
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
)

// binding pairs a descriptor with the native objects it controls, plus the
// last-applied descriptor fields used for diffing.
type binding struct {
	handle MarkerHandle
	popup  PopupHandle
	last   domain.MarkerDescriptor
}

// SyncResult counts the native calls a reconciliation pass issued. A second
// pass over unchanged input must report all zeros.
type SyncResult struct {
	Created int
	Updated int
	Removed int
}

// Total returns the number of native mutations of the pass.
func (r SyncResult) Total() int {
	return r.Created + r.Updated + r.Removed
}

// Reconciler keeps the native marker set equal to a declarative descriptor
// list. Exactly one native marker exists per live descriptor id; removed ids
// dispose their native objects; unchanged fields never trigger native calls.
type Reconciler struct {
	engine   Engine
	logger   *zap.Logger
	bindings map[string]*binding
}

func NewReconciler(engine Engine, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		engine:   engine,
		logger:   logger,
		bindings: make(map[string]*binding),
	}
}

// Sync reconciles the native markers against descs and reports the native
// churn. Descriptor order carries no meaning; identity is the id.
func (r *Reconciler) Sync(descs []domain.MarkerDescriptor) SyncResult {
	var result SyncResult
	live := make(map[string]bool, len(descs))

	for _, desc := range descs {
		live[desc.ID] = true
		if b, ok := r.bindings[desc.ID]; ok {
			if r.update(b, desc) {
				result.Updated++
			}
		} else {
			r.create(desc)
			result.Created++
		}
	}

	for id, b := range r.bindings {
		if !live[id] {
			r.dispose(b)
			delete(r.bindings, id)
			result.Removed++
		}
	}

	if result.Total() > 0 {
		r.logger.Debug("markers reconciled",
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated),
			zap.Int("removed", result.Removed),
			zap.Int("live", len(r.bindings)),
		)
	}

	return result
}

// Len returns the number of live bindings.
func (r *Reconciler) Len() int {
	return len(r.bindings)
}

// Clear removes every native marker. Used on teardown.
func (r *Reconciler) Clear() {
	for id, b := range r.bindings {
		r.dispose(b)
		delete(r.bindings, id)
	}
}

func (r *Reconciler) create(desc domain.MarkerDescriptor) {
	handle := r.engine.AddMarker(MarkerOptions{
		Coordinates:       desc.Coordinates,
		Draggable:         desc.Draggable,
		Offset:            desc.Offset,
		Rotation:          desc.Rotation,
		RotationAlignment: alignmentOrAuto(desc.RotationAlignment),
		PitchAlignment:    alignmentOrAuto(desc.PitchAlignment),
		Events:            desc.Events,
	})
	handle.SetContent(desc.Content)

	b := &binding{handle: handle, last: desc}
	if desc.Popup != nil {
		b.popup = handle.AttachPopup(*desc.Popup)
	}
	r.bindings[desc.ID] = b
}

// update diffs desc against the binding's last-applied fields and issues a
// native setter per changed field only. Redundant calls on unchanged state
// are a defect, not an optimization opportunity.
func (r *Reconciler) update(b *binding, desc domain.MarkerDescriptor) bool {
	changed := false

	if b.last.Coordinates != desc.Coordinates {
		b.handle.SetLngLat(desc.Coordinates)
		changed = true
	}
	if b.last.Draggable != desc.Draggable {
		b.handle.SetDraggable(desc.Draggable)
		changed = true
	}
	if b.last.Offset != desc.Offset {
		b.handle.SetOffset(desc.Offset)
		changed = true
	}
	if b.last.Rotation != desc.Rotation {
		b.handle.SetRotation(desc.Rotation)
		changed = true
	}
	if alignmentOrAuto(b.last.RotationAlignment) != alignmentOrAuto(desc.RotationAlignment) {
		b.handle.SetRotationAlignment(alignmentOrAuto(desc.RotationAlignment))
		changed = true
	}
	if alignmentOrAuto(b.last.PitchAlignment) != alignmentOrAuto(desc.PitchAlignment) {
		b.handle.SetPitchAlignment(alignmentOrAuto(desc.PitchAlignment))
		changed = true
	}
	if !contentEqual(b.last.Content, desc.Content) {
		// Content swap rides on the existing native element.
		b.handle.SetContent(desc.Content)
		changed = true
	}

	if popupChanged := r.updatePopup(b, desc.Popup); popupChanged {
		changed = true
	}

	b.last = desc
	return changed
}

func (r *Reconciler) updatePopup(b *binding, spec *domain.PopupSpec) bool {
	switch {
	case spec == nil && b.popup == nil:
		return false
	case spec == nil:
		b.popup.Remove()
		b.popup = nil
		return true
	case b.popup == nil:
		b.popup = b.handle.AttachPopup(*spec)
		return true
	}

	changed := false
	prev := b.last.Popup
	if prev == nil || prev.Offset != spec.Offset {
		b.popup.SetOffset(spec.Offset)
		changed = true
	}
	if prev == nil || prev.MaxWidth != spec.MaxWidth {
		b.popup.SetMaxWidth(spec.MaxWidth)
		changed = true
	}
	if prev == nil || !contentEqual(prev.Content, spec.Content) {
		b.popup.SetContent(spec.Content)
		changed = true
	}
	return changed
}

func (r *Reconciler) dispose(b *binding) {
	if b.popup != nil {
		b.popup.Remove()
		b.popup = nil
	}
	b.handle.Remove()
}

// contentEqual diffs marker content by value. Each refresh rebuilds spots
// from a fresh fetch with newly allocated coordinate pointers; comparing
// those by interface identity would reissue SetContent on every pass.
func contentEqual(a, b domain.MarkerContent) bool {
	as, aok := a.(domain.Spot)
	bs, bok := b.(domain.Spot)
	if aok && bok {
		return as.Equal(bs)
	}
	return a == b
}

func alignmentOrAuto(a domain.Alignment) domain.Alignment {
	if a == "" {
		return domain.AlignmentAuto
	}
	return a
}
