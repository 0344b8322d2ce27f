package domain

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByRecency  SortKey = "recency"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterCriteria is the current view state the filter engine computes from.
// FilterByMentionedPlaces and an active category selection are mutually
// exclusive; the filter bus enforces that on every setter.
type FilterCriteria struct {
	SearchTerm              string     `json:"search_term"`
	SelectedCategories      []Category `json:"selected_categories"`
	SortBy                  SortKey    `json:"sort_by"`
	SortOrder               SortOrder  `json:"sort_order"`
	MentionedPlaces         []string   `json:"mentioned_places"`
	FilterByMentionedPlaces bool       `json:"filter_by_mentioned_places"`
}

// DefaultCriteria returns the criteria of an untouched view.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		SortBy:    SortByName,
		SortOrder: SortAsc,
	}
}

// HasCategory reports whether cat is in the manual selection.
func (c FilterCriteria) HasCategory(cat Category) bool {
	for _, selected := range c.SelectedCategories {
		if selected == cat {
			return true
		}
	}
	return false
}

// GlobalFilterState is the externally observable slice of the filter state
// shared through the filter bus. ManualFilterAll marks no manual filter.
type GlobalFilterState struct {
	CurrentFilter           string   `json:"current_filter"`
	IsActive                bool     `json:"is_active"`
	MentionedPlaces         []string `json:"mentioned_places"`
	FilterByMentionedPlaces bool     `json:"filter_by_mentioned_places"`
}

// ManualFilterAll is the current-filter value when no manual category filter
// is active.
const ManualFilterAll = "todos"
