package domain

// Category is the closed UI-side category enumeration. Backend categories
// outside the known keywords map to CategoryOtros.
type Category string

const (
	CategoryParques      Category = "parques"
	CategoryMonumentos   Category = "monumentos"
	CategoryTiendas      Category = "tiendas"
	CategoryMuseos       Category = "museos"
	CategoryMercados     Category = "mercados"
	CategoryHoteles      Category = "hoteles"
	CategoryPlayas       Category = "playas"
	CategoryBares        Category = "bares"
	CategoryDiscotecas   Category = "discotecas"
	CategoryRestaurantes Category = "restaurantes"
	CategoryOtros        Category = "otros"
)

// Categories lists every selectable category, in sidebar order.
var Categories = []Category{
	CategoryParques,
	CategoryMonumentos,
	CategoryTiendas,
	CategoryMuseos,
	CategoryMercados,
	CategoryHoteles,
	CategoryPlayas,
	CategoryBares,
	CategoryDiscotecas,
	CategoryRestaurantes,
}

// backendCategoryIDs translates UI category ids to the ids the place backend
// expects in its category query parameter. Identity unless listed.
var backendCategoryIDs = map[Category]string{
	CategoryMonumentos: "patrimonio",
	CategoryTiendas:    "centros-comerciales",
}

// BackendID returns the backend-side id for a UI category.
func (c Category) BackendID() string {
	if id, ok := backendCategoryIDs[c]; ok {
		return id
	}
	return string(c)
}

// Valid reports whether c is a member of the closed enumeration.
func (c Category) Valid() bool {
	if c == CategoryOtros {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// categoryTitles backs the dynamic sidebar title for an active manual filter.
var categoryTitles = map[Category]string{
	CategoryParques:      "Parques y Espacios Verdes",
	CategoryMonumentos:   "Monumentos y Patrimonio",
	CategoryTiendas:      "Tiendas y Compras",
	CategoryMuseos:       "Museos y Cultura",
	CategoryMercados:     "Mercados y Ferias",
	CategoryHoteles:      "Hoteles y Hospedajes",
	CategoryPlayas:       "Playas y Balnearios",
	CategoryBares:        "Bares y Vida Nocturna",
	CategoryDiscotecas:   "Discotecas y Clubes",
	CategoryRestaurantes: "Restaurantes y Gastronomía",
}

// Title returns the human-readable label for the category, falling back to
// the explore-all default when the category has no dedicated title.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return DefaultTitle
}

// DefaultTitle is the explore-all sidebar label.
const DefaultTitle = "Lugares Destacados"
