package dto

import (
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filter"
)

// ListPlacesResponse - place listing with filter statistics
type ListPlacesResponse struct {
	Places []domain.Spot `json:"places"`
	Stats  filter.Stats  `json:"stats"`
	Title  string        `json:"title"`
	Source string        `json:"source"`
}

// Place data sources.
const (
	SourceBackend = "backend"
	SourceLocal   = "local"
)

// PlaceResponse - single place
type PlaceResponse struct {
	Place domain.Spot `json:"place"`
}

// ExtractResponse - resolved address hierarchy of a point
type ExtractResponse struct {
	Coordinates domain.Coordinates `json:"coordinates"`
	Address     domain.Address     `json:"address"`
}

// RouteResponse - driving route with distance and duration
type RouteResponse struct {
	Route domain.Route `json:"route"`
}

// FilterStateResponse - shared filter state and the title it produces
type FilterStateResponse struct {
	State domain.GlobalFilterState `json:"state"`
	Title string                   `json:"title"`
}

// ChatFilterResponse - result of scanning a message for place mentions
type ChatFilterResponse struct {
	MentionedPlaces []string `json:"mentioned_places"`
	FilterApplied   bool     `json:"filter_applied"`
}

// SuggestionsResponse - search completions for a partial term
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
