package domain

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Pixel is a position in map canvas pixels.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CanvasSize is the pixel size of the map canvas.
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Address is the hierarchy returned by the reverse-geocoding collaborator.
// Fields are filled from most to least specific depending on the zoom level
// the lookup was issued at.
type Address struct {
	Road          string `json:"road,omitempty"`
	Neighbourhood string `json:"neighbourhood,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	City          string `json:"city,omitempty"`
	County        string `json:"county,omitempty"`
	Region        string `json:"region,omitempty"`
	State         string `json:"state,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	Country       string `json:"country,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
}

// Merge fills empty fields of a with values from b. Used to combine lookups
// issued at different zoom levels, most specific first.
func (a *Address) Merge(b Address) {
	if a.Road == "" {
		a.Road = b.Road
	}
	if a.Neighbourhood == "" {
		a.Neighbourhood = b.Neighbourhood
	}
	if a.Suburb == "" {
		a.Suburb = b.Suburb
	}
	if a.City == "" {
		a.City = b.City
	}
	if a.County == "" {
		a.County = b.County
	}
	if a.Region == "" {
		a.Region = b.Region
	}
	if a.State == "" {
		a.State = b.State
	}
	if a.Postcode == "" {
		a.Postcode = b.Postcode
	}
	if a.Country == "" {
		a.Country = b.Country
	}
	if a.CountryCode == "" {
		a.CountryCode = b.CountryCode
	}
	if a.DisplayName == "" {
		a.DisplayName = b.DisplayName
	}
}

// Route is a driving route between two points.
type Route struct {
	Geometry    []Coordinates `json:"geometry"`
	DistanceKm  float64       `json:"distance_km"`
	DurationMin int           `json:"duration_min"`
}
