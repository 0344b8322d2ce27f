// Package docs Memoria Radar API.
//
// Servicio del radar turístico de Huancayo. Expone el catálogo de lugares y
// eventos, el estado global de filtros compartido con el mapa y el chat, la
// extracción de direcciones por geocodificación inversa y el cálculo de rutas
// en auto.
//
// Capacidades principales:
// - Catálogo de lugares con filtrado, búsqueda y orden
// - Filtro global compartido (categoría manual y lugares mencionados)
// - Extracción de direcciones combinando varios niveles de zoom
// - Rutas en auto con distancia y duración
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
