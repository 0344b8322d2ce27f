package mapengine

// Theme is the user-selectable basemap flavor.
type Theme string

const (
	ThemeStandard  Theme = "standard"
	ThemeSatellite Theme = "satellite"
	ThemeHybrid    Theme = "hybrid"
)

// ColorScheme picks the vector basemap variant for the standard theme.
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// StyleKind distinguishes URL-referenced vector styles from inline raster
// definitions.
type StyleKind string

const (
	StyleVector StyleKind = "vector"
	StyleRaster StyleKind = "raster"
)

// RasterSource is one tile source of an inline raster style.
type RasterSource struct {
	ID          string
	TileURL     string
	TileSize    int
	Attribution string
}

// Style is a basemap definition. Vector styles reference a hosted style
// document; raster styles carry their sources inline.
type Style struct {
	Name    string
	Kind    StyleKind
	URL     string
	Sources []RasterSource
}

var (
	styleLight = Style{
		Name: "light",
		Kind: StyleVector,
		URL:  "https://basemaps.cartocdn.com/gl/positron-gl-style/style.json",
	}

	styleDark = Style{
		Name: "dark",
		Kind: StyleVector,
		URL:  "https://basemaps.cartocdn.com/gl/dark-matter-gl-style/style.json",
	}

	styleSatellite = Style{
		Name: "satellite",
		Kind: StyleRaster,
		Sources: []RasterSource{
			{
				ID:          "satellite-tiles",
				TileURL:     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
				TileSize:    256,
				Attribution: "© Esri, Maxar, Earthstar Geographics",
			},
		},
	}

	styleHybrid = Style{
		Name: "hybrid",
		Kind: StyleRaster,
		Sources: []RasterSource{
			{
				ID:          "satellite-tiles",
				TileURL:     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
				TileSize:    256,
				Attribution: "© Esri, Maxar, Earthstar Geographics",
			},
			{
				ID:       "labels-tiles",
				TileURL:  "https://services.arcgisonline.com/ArcGIS/rest/services/Reference/World_Boundaries_and_Places/MapServer/tile/{z}/{y}/{x}",
				TileSize: 256,
			},
		},
	}
)

// StyleFor resolves the style for a theme and color scheme. Satellite and
// hybrid ignore the scheme.
func StyleFor(theme Theme, scheme ColorScheme) Style {
	switch theme {
	case ThemeSatellite:
		return styleSatellite
	case ThemeHybrid:
		return styleHybrid
	default:
		if scheme == SchemeDark {
			return styleDark
		}
		return styleLight
	}
}
