// Package filterbus is the process-wide store coordinating filter state
// between components with no ancestor/descendant relationship: the chat
// assistant pushes mentioned places, the sidebar and map react. Subscribers
// always receive snapshots, never live references.
package filterbus

import (
	"sync"

	"github.com/memoria-radar/internal/domain"
)

type subscriber struct {
	id int
	fn func(domain.GlobalFilterState)
}

// Bus holds the shared filter state and its subscriber list. The zero value
// is not usable; construct with New or use Default.
type Bus struct {
	mu          sync.Mutex
	state       domain.GlobalFilterState
	subscribers []subscriber
	nextID      int
}

func New() *Bus {
	return &Bus{
		state: domain.GlobalFilterState{
			CurrentFilter: domain.ManualFilterAll,
		},
	}
}

var defaultBus = New()

// Default returns the process-wide bus instance.
func Default() *Bus {
	return defaultBus
}

// GetState returns a snapshot of the current state. The mentioned-places
// slice is copied; mutating the result never affects the bus.
func (b *Bus) GetState() domain.GlobalFilterState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Bus) snapshotLocked() domain.GlobalFilterState {
	snap := b.state
	if len(b.state.MentionedPlaces) > 0 {
		snap.MentionedPlaces = append([]string(nil), b.state.MentionedPlaces...)
	}
	return snap
}

// SetManualFilter activates a manual category filter. Selecting the already
// active category clears it back to "all". Either way any mentioned-places
// filter is cleared: the two are mutually exclusive.
func (b *Bus) SetManualFilter(category domain.Category) {
	b.mu.Lock()
	if string(category) == b.state.CurrentFilter || string(category) == domain.ManualFilterAll {
		b.state.CurrentFilter = domain.ManualFilterAll
		b.state.IsActive = false
	} else {
		b.state.CurrentFilter = string(category)
		b.state.IsActive = true
	}
	b.state.MentionedPlaces = nil
	b.state.FilterByMentionedPlaces = false
	b.publishLocked()
}

// SetMentionedPlacesFilter replaces the mentioned-places list. A non-empty
// list activates the filter and clears the manual category filter.
func (b *Bus) SetMentionedPlacesFilter(places ...string) {
	b.mu.Lock()
	filtered := make([]string, 0, len(places))
	for _, p := range places {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	b.state.MentionedPlaces = filtered
	b.state.FilterByMentionedPlaces = len(filtered) > 0
	b.state.CurrentFilter = domain.ManualFilterAll
	b.state.IsActive = false
	b.publishLocked()
}

// ClearManualFilter resets the manual category filter to defaults.
func (b *Bus) ClearManualFilter() {
	b.mu.Lock()
	b.state.CurrentFilter = domain.ManualFilterAll
	b.state.IsActive = false
	b.publishLocked()
}

// ClearMentionedPlacesFilter drops the mentioned-places filter.
func (b *Bus) ClearMentionedPlacesFilter() {
	b.mu.Lock()
	b.state.MentionedPlaces = nil
	b.state.FilterByMentionedPlaces = false
	b.publishLocked()
}

// IsFilterActive reports whether the given manual category filter is active.
func (b *Bus) IsFilterActive(category domain.Category) bool {
	state := b.GetState()
	return state.IsActive && state.CurrentFilter == string(category)
}

// DynamicTitle projects the current state onto the sidebar label. Precedence:
// mentioned places, then manual category, then the explore-all default.
func (b *Bus) DynamicTitle() string {
	state := b.GetState()
	if state.FilterByMentionedPlaces && len(state.MentionedPlaces) > 0 {
		return "Lugares Mencionados"
	}
	if state.IsActive && state.CurrentFilter != domain.ManualFilterAll {
		return domain.Category(state.CurrentFilter).Title()
	}
	return domain.DefaultTitle
}

// Subscribe registers a callback for every publish. No replay of missed
// events. The returned unsubscribe is safe to call more than once.
func (b *Bus) Subscribe(fn func(domain.GlobalFilterState)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subscribers {
			if sub.id == id {
				b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// publishLocked notifies subscribers synchronously and releases the lock.
// Callbacks run over a snapshot of the subscriber list outside the lock, so
// a subscriber may call setters or unsubscribe reentrantly.
func (b *Bus) publishLocked() {
	snap := b.snapshotLocked()
	subs := append([]subscriber(nil), b.subscribers...)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}
