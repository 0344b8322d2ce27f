// Package filter computes the visible place list from the current criteria.
// Apply is pure: fixed inputs always yield byte-for-byte identical output,
// so results can be memoized on (spots, criteria).
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/memoria-radar/internal/domain"
)

// Apply returns the filtered, sorted view of spots under c. Priority order:
// an active mentioned-places filter overrides search and category filters
// entirely; otherwise free-text search runs first, then the category set.
func Apply(spots []domain.Spot, c domain.FilterCriteria) []domain.Spot {
	filtered := make([]domain.Spot, 0, len(spots))

	if c.FilterByMentionedPlaces && len(c.MentionedPlaces) > 0 {
		for _, s := range spots {
			if mentionMatches(s.DisplayName(), c.MentionedPlaces) {
				filtered = append(filtered, s)
			}
		}
	} else {
		term := strings.TrimSpace(c.SearchTerm)
		for _, s := range spots {
			if term != "" && !matchesAllTokens(term, s.Name, s.Description, string(s.Category)) {
				continue
			}
			if len(c.SelectedCategories) > 0 && !c.HasCategory(s.Category) {
				continue
			}
			filtered = append(filtered, s)
		}
	}

	sortSpots(filtered, c.SortBy, c.SortOrder)
	return filtered
}

func sortSpots(spots []domain.Spot, key domain.SortKey, order domain.SortOrder) {
	sort.SliceStable(spots, func(i, j int) bool {
		cmp := compareSpots(spots[i], spots[j], key)
		if order == domain.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func compareSpots(a, b domain.Spot, key domain.SortKey) int {
	switch key {
	case domain.SortByCategory:
		return strings.Compare(Normalize(string(a.Category)), Normalize(string(b.Category)))
	case domain.SortByRecency:
		// Newer first. Spots without a creation date fall back to the numeric
		// id treated as a unix timestamp.
		ta, tb := recencyValue(a), recencyValue(b)
		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(Normalize(a.Name), Normalize(b.Name))
	}
}

func recencyValue(s domain.Spot) int64 {
	if !s.CreatedAt.IsZero() {
		return s.CreatedAt.Unix()
	}
	if id, err := strconv.ParseInt(s.ID, 10, 64); err == nil {
		return id
	}
	return 0
}

// Stats summarizes the effect of the current criteria on the collection.
type Stats struct {
	Total      int  `json:"total"`
	Filtered   int  `json:"filtered"`
	Categories int  `json:"categories_used"`
	HasSearch  bool `json:"has_search"`
	IsFiltered bool `json:"is_filtered"`
}

// ComputeStats derives filter statistics for the sidebar header.
func ComputeStats(spots, filtered []domain.Spot, c domain.FilterCriteria) Stats {
	hasSearch := strings.TrimSpace(c.SearchTerm) != ""
	return Stats{
		Total:      len(spots),
		Filtered:   len(filtered),
		Categories: len(c.SelectedCategories),
		HasSearch:  hasSearch,
		IsFiltered: hasSearch || len(c.SelectedCategories) > 0,
	}
}

const maxSuggestions = 5

// Suggestions returns up to five search completions drawn from names,
// categories and description words of the collection. Terms shorter than two
// runes produce none.
func Suggestions(spots []domain.Spot, term string) []string {
	normTerm := Normalize(strings.TrimSpace(term))
	if len([]rune(normTerm)) < 2 {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if len(out) >= maxSuggestions || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, s := range spots {
		if strings.Contains(Normalize(s.Name), normTerm) {
			add(s.Name)
		}
		if strings.Contains(Normalize(string(s.Category)), normTerm) {
			add(string(s.Category))
		}
		for _, word := range strings.Fields(s.Description) {
			if len([]rune(word)) > 3 && strings.Contains(Normalize(word), normTerm) {
				add(strings.ToLower(word))
			}
		}
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}
