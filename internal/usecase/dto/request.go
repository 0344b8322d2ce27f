package dto

// ListPlacesRequest - parameters of a place listing
type ListPlacesRequest struct {
	Categories      []string `json:"categories" validate:"omitempty,dive,min=1"`
	Search          string   `json:"search"`
	SortBy          string   `json:"sort_by" validate:"omitempty,oneof=name category recency"`
	SortOrder       string   `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	MentionedPlaces []string `json:"mentioned_places,omitempty"`
}

// CreatePlaceRequest - request to register a new place or event
type CreatePlaceRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Category    string   `json:"category" validate:"required"`
	EventDate   string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Lat         *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon         *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Color       string   `json:"color" validate:"omitempty,hexcolor"`
}

// ExtractRequest - request to resolve the address hierarchy of a point
type ExtractRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// RouteRequest - request for a driving route between two points
type RouteRequest struct {
	StartLat float64 `json:"start_lat" validate:"min=-90,max=90"`
	StartLon float64 `json:"start_lon" validate:"min=-180,max=180"`
	EndLat   float64 `json:"end_lat" validate:"min=-90,max=90"`
	EndLon   float64 `json:"end_lon" validate:"min=-180,max=180"`
}

// ChatMessageRequest - assistant message to scan for place mentions
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ManualFilterRequest - request to toggle the manual category filter
type ManualFilterRequest struct {
	Category string `json:"category" validate:"required"`
}

// MentionedFilterRequest - request to activate the mentioned-places filter
type MentionedFilterRequest struct {
	Places []string `json:"places" validate:"required,min=1,dive,min=1"`
}
