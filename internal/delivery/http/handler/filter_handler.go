package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/filterbus"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/pkg/validator"
	"github.com/memoria-radar/internal/usecase"
	"github.com/memoria-radar/internal/usecase/dto"
)

// FilterHandler - handler para el estado global de filtros compartido entre
// el mapa, la barra lateral y el chat
type FilterHandler struct {
	bus    *filterbus.Bus
	chatUC *usecase.ChatFilterUseCase
	logger *zap.Logger
}

// NewFilterHandler - crea un nuevo FilterHandler
func NewFilterHandler(bus *filterbus.Bus, chatUC *usecase.ChatFilterUseCase, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{
		bus:    bus,
		chatUC: chatUC,
		logger: logger,
	}
}

// GetState godoc
// @Summary Estado del filtro global
// @Description Devuelve el filtro activo, los lugares mencionados y el título dinámico de la barra lateral.
// @Tags Filter
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterStateResponse}
// @Router /api/v1/filter [get]
func (h *FilterHandler) GetState(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.FilterStateResponse{
		State: h.bus.GetState(),
		Title: h.bus.DynamicTitle(),
	}, nil)
}

// SetManualFilter godoc
// @Summary Activar el filtro manual de categoría
// @Description Activa el filtro manual. Repetir la misma categoría o enviar "todos" lo desactiva. Activarlo limpia el filtro de lugares mencionados.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body dto.ManualFilterRequest true "Categoría a filtrar"
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterStateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/filter/category [post]
func (h *FilterHandler) SetManualFilter(c *fiber.Ctx) error {
	var req dto.ManualFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	category := domain.Category(req.Category)
	if req.Category != domain.ManualFilterAll && !category.Valid() {
		return utils.SendError(c, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
		}))
	}

	h.bus.SetManualFilter(category)
	return h.GetState(c)
}

// SetMentionedFilter godoc
// @Summary Activar el filtro de lugares mencionados
// @Description Activa el filtro por lugares mencionados. Activarlo limpia el filtro manual de categoría.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body dto.MentionedFilterRequest true "Lugares mencionados"
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterStateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/filter/mentioned [post]
func (h *FilterHandler) SetMentionedFilter(c *fiber.Ctx) error {
	var req dto.MentionedFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	h.bus.SetMentionedPlacesFilter(req.Places...)
	return h.GetState(c)
}

// ClearFilters godoc
// @Summary Limpiar todos los filtros
// @Description Desactiva el filtro manual y el de lugares mencionados.
// @Tags Filter
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterStateResponse}
// @Router /api/v1/filter [delete]
func (h *FilterHandler) ClearFilters(c *fiber.Ctx) error {
	h.bus.ClearManualFilter()
	h.bus.ClearMentionedPlacesFilter()
	return h.GetState(c)
}

// ProcessChatMessage godoc
// @Summary Procesar un mensaje del asistente
// @Description Busca nombres de lugares conocidos dentro del mensaje y, si encuentra alguno, activa el filtro de lugares mencionados.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body dto.ChatMessageRequest true "Mensaje a analizar"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChatFilterResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/chat/message [post]
func (h *FilterHandler) ProcessChatMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.chatUC.ProcessMessage(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
