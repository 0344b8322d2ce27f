package placesapi

import "github.com/memoria-radar/internal/domain"

func coords(lat, lon float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lon: lon}
}

// localPlaces is the bundled Huancayo dataset the app falls back to when the
// backend fetch fails. Falling back is first-class behavior: the map must
// never come up empty because of a network error.
var localPlaces = []domain.Spot{
	{
		ID:          "1",
		Kind:        domain.SpotPlace,
		Name:        "Parque Constitución",
		Description: "Plaza principal de Huancayo, rodeada de la catedral y edificios históricos. Punto de encuentro tradicional de la ciudad.",
		Category:    domain.CategoryParques,
		Coordinates: coords(-12.067330, -75.210755),
		Color:       "#10B981",
	},
	{
		ID:          "2",
		Kind:        domain.SpotPlace,
		Name:        "Plaza Huamanmarca",
		Description: "La plaza más antigua de Huancayo, sede de la municipalidad y escenario de eventos cívicos.",
		Category:    domain.CategoryMonumentos,
		Coordinates: coords(-12.069333, -75.208889),
		Color:       "#6B7280",
	},
	{
		ID:          "3",
		Kind:        domain.SpotPlace,
		Name:        "Cerrito de la Libertad",
		Description: "Mirador natural con vista panorámica del valle del Mantaro, zoológico y juegos para niños.",
		Category:    domain.CategoryParques,
		Coordinates: coords(-12.056944, -75.196944),
		Color:       "#10B981",
	},
	{
		ID:          "4",
		Kind:        domain.SpotPlace,
		Name:        "Feria Dominical de Huancayo",
		Description: "Feria tradicional de los domingos sobre la avenida Huancavelica: artesanía, textiles y gastronomía del valle.",
		Category:    domain.CategoryMercados,
		Coordinates: coords(-12.064722, -75.215278),
		Color:       "#F59E0B",
	},
	{
		ID:          "5",
		Kind:        domain.SpotPlace,
		Name:        "Museo Salesiano Vellard Berndt",
		Description: "Colección de ciencias naturales, arqueología y paleontología del centro del Perú.",
		Category:    domain.CategoryMuseos,
		Coordinates: coords(-12.059167, -75.211667),
		Color:       "#8B5CF6",
	},
	{
		ID:          "6",
		Kind:        domain.SpotPlace,
		Name:        "Parque de la Identidad Wanka",
		Description: "Parque escultórico dedicado a la cultura wanka, con senderos de piedra y monumentos a artistas regionales.",
		Category:    domain.CategoryParques,
		Coordinates: coords(-12.050556, -75.198611),
		Color:       "#10B981",
	},
	{
		ID:          "7",
		Kind:        domain.SpotPlace,
		Name:        "Restaurante Huancahuasi",
		Description: "Cocina regional del valle del Mantaro: pachamanca, papa a la huancaína y trucha.",
		Category:    domain.CategoryRestaurantes,
		Coordinates: coords(-12.046389, -75.205833),
		Color:       "#F97316",
	},
	{
		ID:          "8",
		Kind:        domain.SpotPlace,
		Name:        "Mercado Mayorista",
		Description: "Mercado de abastos con productos agrícolas del valle, frutas y comida típica.",
		Category:    domain.CategoryMercados,
		Coordinates: coords(-12.071389, -75.206111),
		Color:       "#F59E0B",
	},
	{
		ID:          "9",
		Kind:        domain.SpotPlace,
		Name:        "Catedral de Huancayo",
		Description: "Catedral neoclásica frente al Parque Constitución, construida a mediados del siglo XIX.",
		Category:    domain.CategoryMonumentos,
		Coordinates: coords(-12.067861, -75.210139),
		Color:       "#6B7280",
	},
	{
		ID:          "10",
		Kind:        domain.SpotPlace,
		Name:        "Hotel Presidente Huancayo",
		Description: "Hotel céntrico tradicional a pasos de la calle Real.",
		Category:    domain.CategoryHoteles,
		Coordinates: coords(-12.066111, -75.209722),
		Color:       "#6366F1",
	},
}

// LocalPlaces returns a fresh copy of the bundled dataset so callers can
// mutate their collection freely.
func LocalPlaces() []domain.Spot {
	out := make([]domain.Spot, len(localPlaces))
	copy(out, localPlaces)
	return out
}
