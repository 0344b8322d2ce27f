package placesapi

import (
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filter"
)

// backendCategoryKeywords maps normalized backend category strings to the
// closed UI enumeration. The backend vocabulary is looser than ours;
// anything unlisted becomes otros.
var backendCategoryKeywords = map[domain.Category][]string{
	domain.CategoryParques:      {"parques", "parque", "naturaleza"},
	domain.CategoryMuseos:       {"museos", "museo"},
	domain.CategoryMercados:     {"mercados", "mercado"},
	domain.CategoryRestaurantes: {"restaurantes", "restaurante", "comida", "gastronomia"},
	domain.CategoryBares:        {"bares", "bar", "vida nocturna", "nocturno"},
	domain.CategoryTiendas:      {"tiendas", "compras", "centro comercial", "centros comerciales", "centros-comerciales", "centro-comercial"},
	domain.CategoryHoteles:      {"hoteles", "hotel", "hostal", "alojamiento"},
	domain.CategoryMonumentos:   {"patrimonio", "monumentos", "monumento", "historia"},
	domain.CategoryPlayas:       {"playas", "playa"},
	domain.CategoryDiscotecas:   {"discotecas", "discoteca", "club"},
}

// MapBackendCategory resolves a backend category string to the UI enum.
func MapBackendCategory(s string) domain.Category {
	normalized := filter.Normalize(s)
	for category, keywords := range backendCategoryKeywords {
		for _, kw := range keywords {
			if kw == normalized {
				return category
			}
		}
	}
	return domain.CategoryOtros
}
