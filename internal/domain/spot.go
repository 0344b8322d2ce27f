package domain

import "time"

// DefaultMarkerColor is used for places that arrive without a color assigned.
const DefaultMarkerColor = "#3b82f6"

type SpotKind string

const (
	SpotPlace SpotKind = "place"
	SpotEvent SpotKind = "event"
)

// Spot is a point of interest shown on the map. Places and events share one
// type with a kind tag instead of being sniffed by shape at every use site;
// the tag is resolved once at ingestion time.
type Spot struct {
	ID          string       `json:"id"`
	Kind        SpotKind     `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	EventDate   time.Time    `json:"event_date,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Color       string       `json:"color"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
}

// DisplayName returns the list/marker label: the place name or event title.
func (s Spot) DisplayName() string {
	return s.Name
}

// CategoryLabel returns the category for places and a fixed label for events,
// which have a date instead of a category.
func (s Spot) CategoryLabel() string {
	if s.Kind == SpotEvent {
		if !s.EventDate.IsZero() {
			return s.EventDate.Format("02 Jan 2006")
		}
		return "Evento"
	}
	return string(s.Category)
}

// HasCoordinates reports whether the spot can be placed on the map. A spot
// whose backend location string failed to parse keeps Coordinates == nil: it
// is excluded from map rendering but still appears in list views.
func (s Spot) HasCoordinates() bool {
	return s.Coordinates != nil
}

// Equal reports whether two spots carry the same data. Coordinates are
// compared by value, not pointer identity, so a spot re-fetched from the
// backend compares equal to its previous incarnation.
func (s Spot) Equal(other Spot) bool {
	if (s.Coordinates == nil) != (other.Coordinates == nil) {
		return false
	}
	if s.Coordinates != nil && *s.Coordinates != *other.Coordinates {
		return false
	}
	s.Coordinates, other.Coordinates = nil, nil
	return s == other
}

// MarkerColor returns the configured color or the default.
func (s Spot) MarkerColor() string {
	if s.Color == "" {
		return DefaultMarkerColor
	}
	return s.Color
}
