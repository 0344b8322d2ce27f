package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/usecase"
	"github.com/memoria-radar/internal/usecase/dto"
)

// PlaceHandler - handler para el catálogo de lugares y eventos
type PlaceHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

// NewPlaceHandler - crea un nuevo PlaceHandler
func NewPlaceHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// ListPlaces godoc
// @Summary Listar lugares turísticos
// @Description Devuelve el catálogo de lugares y eventos de Huancayo, filtrado y ordenado. Si el backend de lugares no responde se usa el catálogo local empaquetado.
// @Tags Places
// @Produce json
// @Param categories query string false "Categorías separadas por coma (parques, monumentos, tiendas, museos, mercados, hoteles, playas, bares, discotecas, restaurantes, otros)"
// @Param search query string false "Búsqueda por texto libre; cada palabra debe coincidir"
// @Param sort_by query string false "Criterio de orden (name, category, recency)" default(name)
// @Param sort_order query string false "Dirección del orden (asc, desc)" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=dto.ListPlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) ListPlaces(c *fiber.Ctx) error {
	req := dto.ListPlacesRequest{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				req.Categories = append(req.Categories, cat)
			}
		}
	}

	result, err := h.placesUC.ListPlaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Stats.Total,
		Filtered: result.Stats.Filtered,
	})
}

// CreatePlace godoc
// @Summary Registrar un lugar o evento
// @Description Registra un lugar o evento nuevo en el catálogo. Un event_date convierte el registro en evento.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.CreatePlaceRequest true "Datos del lugar"
// @Success 201 {object} utils.SuccessResponse{data=dto.PlaceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [post]
func (h *PlaceHandler) CreatePlace(c *fiber.Ctx) error {
	var req dto.CreatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.placesUC.CreatePlace(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// DeletePlace godoc
// @Summary Eliminar un lugar
// @Description Elimina un lugar del catálogo por su id.
// @Tags Places
// @Produce json
// @Param id path string true "Id del lugar"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [delete]
func (h *PlaceHandler) DeletePlace(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.placesUC.DeletePlace(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}

// Suggest godoc
// @Summary Sugerencias de búsqueda
// @Description Devuelve hasta cinco completados de búsqueda a partir de nombres, categorías y descripciones.
// @Tags Places
// @Produce json
// @Param q query string true "Término parcial (mínimo 2 caracteres)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SuggestionsResponse}
// @Router /api/v1/places/suggestions [get]
func (h *PlaceHandler) Suggest(c *fiber.Ctx) error {
	result, err := h.placesUC.Suggest(c.Context(), c.Query("q"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
