package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/usecase"
	"github.com/memoria-radar/internal/usecase/dto"
)

// GeoHandler - handler para extracción de direcciones y rutas
type GeoHandler struct {
	extractionUC *usecase.ExtractionUseCase
	routeUC      *usecase.RouteUseCase
	logger       *zap.Logger
}

// NewGeoHandler - crea un nuevo GeoHandler
func NewGeoHandler(extractionUC *usecase.ExtractionUseCase, routeUC *usecase.RouteUseCase, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{
		extractionUC: extractionUC,
		routeUC:      routeUC,
		logger:       logger,
	}
}

// Extract godoc
// @Summary Extraer la dirección de un punto
// @Description Resuelve la jerarquía de dirección de un punto del mapa combinando consultas a varios niveles de zoom, del más específico al más general. Una extracción nueva cancela la anterior en vuelo.
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Coordenadas del punto"
// @Success 200 {object} utils.SuccessResponse{data=dto.ExtractResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/extract [post]
func (h *GeoHandler) Extract(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.extractionUC.ExtractAt(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// GetRoute godoc
// @Summary Ruta en auto entre dos puntos
// @Description Calcula la ruta en auto entre la posición del visitante y un lugar, con distancia en kilómetros y duración en minutos.
// @Tags Geo
// @Produce json
// @Param start_lat query number true "Latitud de origen"
// @Param start_lon query number true "Longitud de origen"
// @Param end_lat query number true "Latitud de destino"
// @Param end_lon query number true "Longitud de destino"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/route [get]
func (h *GeoHandler) GetRoute(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		StartLat: c.QueryFloat("start_lat"),
		StartLon: c.QueryFloat("start_lon"),
		EndLat:   c.QueryFloat("end_lat"),
		EndLon:   c.QueryFloat("end_lon"),
	}

	result, err := h.routeUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
