package filterbus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filterbus"
)

func TestManualFilter(t *testing.T) {
	t.Run("activates and toggles off on repeat", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetManualFilter(domain.CategoryParques)
		state := bus.GetState()
		assert.Equal(t, "parques", state.CurrentFilter)
		assert.True(t, state.IsActive)
		assert.True(t, bus.IsFilterActive(domain.CategoryParques))

		bus.SetManualFilter(domain.CategoryParques)
		state = bus.GetState()
		assert.Equal(t, domain.ManualFilterAll, state.CurrentFilter)
		assert.False(t, state.IsActive)
	})

	t.Run("switching categories keeps the filter active", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetManualFilter(domain.CategoryParques)
		bus.SetManualFilter(domain.CategoryMuseos)

		state := bus.GetState()
		assert.Equal(t, "museos", state.CurrentFilter)
		assert.True(t, state.IsActive)
		assert.False(t, bus.IsFilterActive(domain.CategoryParques))
	})

	t.Run("todos deactivates explicitly", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetManualFilter(domain.CategoryBares)
		bus.SetManualFilter(domain.Category(domain.ManualFilterAll))

		assert.False(t, bus.GetState().IsActive)
	})
}

func TestMutualExclusion(t *testing.T) {
	t.Run("manual filter clears mentioned places", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetMentionedPlacesFilter("Parque Constitución")
		bus.SetManualFilter(domain.CategoryMuseos)

		state := bus.GetState()
		assert.True(t, state.IsActive)
		assert.False(t, state.FilterByMentionedPlaces)
		assert.Empty(t, state.MentionedPlaces)
	})

	t.Run("mentioned places clear the manual filter", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetManualFilter(domain.CategoryMuseos)
		bus.SetMentionedPlacesFilter("Parque Constitución", "Plaza Huamanmarca")

		state := bus.GetState()
		assert.False(t, state.IsActive)
		assert.Equal(t, domain.ManualFilterAll, state.CurrentFilter)
		assert.True(t, state.FilterByMentionedPlaces)
		assert.Len(t, state.MentionedPlaces, 2)
	})

	t.Run("empty mentions deactivate", func(t *testing.T) {
		bus := filterbus.New()

		bus.SetMentionedPlacesFilter("Parque Constitución")
		bus.SetMentionedPlacesFilter("", "")

		state := bus.GetState()
		assert.False(t, state.FilterByMentionedPlaces)
		assert.Empty(t, state.MentionedPlaces)
	})
}

func TestSnapshots(t *testing.T) {
	bus := filterbus.New()
	bus.SetMentionedPlacesFilter("Parque Constitución")

	snap := bus.GetState()
	snap.MentionedPlaces[0] = "mutated"

	assert.Equal(t, "Parque Constitución", bus.GetState().MentionedPlaces[0])
}

func TestDynamicTitle(t *testing.T) {
	bus := filterbus.New()
	assert.Equal(t, domain.DefaultTitle, bus.DynamicTitle())

	bus.SetManualFilter(domain.CategoryParques)
	assert.Equal(t, domain.CategoryParques.Title(), bus.DynamicTitle())

	// Mentioned places outrank the manual category.
	bus.SetMentionedPlacesFilter("Parque Constitución")
	assert.Equal(t, "Lugares Mencionados", bus.DynamicTitle())

	bus.ClearMentionedPlacesFilter()
	assert.Equal(t, domain.DefaultTitle, bus.DynamicTitle())
}

func TestSubscribe(t *testing.T) {
	t.Run("every publish reaches every subscriber", func(t *testing.T) {
		bus := filterbus.New()

		var a, b int
		bus.Subscribe(func(domain.GlobalFilterState) { a++ })
		bus.Subscribe(func(domain.GlobalFilterState) { b++ })

		bus.SetManualFilter(domain.CategoryParques)
		bus.ClearManualFilter()

		assert.Equal(t, 2, a)
		assert.Equal(t, 2, b)
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		bus := filterbus.New()

		calls := 0
		off := bus.Subscribe(func(domain.GlobalFilterState) { calls++ })
		other := 0
		bus.Subscribe(func(domain.GlobalFilterState) { other++ })

		off()
		off()
		bus.SetManualFilter(domain.CategoryParques)

		assert.Equal(t, 0, calls)
		assert.Equal(t, 1, other)
	})

	t.Run("subscriber receives the published snapshot", func(t *testing.T) {
		bus := filterbus.New()

		var got domain.GlobalFilterState
		bus.Subscribe(func(s domain.GlobalFilterState) { got = s })

		bus.SetMentionedPlacesFilter("Cerrito de la Libertad")

		require.True(t, got.FilterByMentionedPlaces)
		assert.Equal(t, []string{"Cerrito de la Libertad"}, got.MentionedPlaces)
	})

	t.Run("a subscriber may publish reentrantly", func(t *testing.T) {
		bus := filterbus.New()

		cleared := false
		bus.Subscribe(func(s domain.GlobalFilterState) {
			// Clearing in response to an activation must not deadlock.
			if s.FilterByMentionedPlaces && !cleared {
				cleared = true
				bus.ClearMentionedPlacesFilter()
			}
		})

		bus.SetMentionedPlacesFilter("Parque Constitución")

		assert.True(t, cleared)
		assert.False(t, bus.GetState().FilterByMentionedPlaces)
	})

	t.Run("a subscriber may unsubscribe itself mid-publish", func(t *testing.T) {
		bus := filterbus.New()

		var off func()
		calls := 0
		off = bus.Subscribe(func(domain.GlobalFilterState) {
			calls++
			off()
		})

		bus.SetManualFilter(domain.CategoryParques)
		bus.ClearManualFilter()

		assert.Equal(t, 1, calls)
	})
}
