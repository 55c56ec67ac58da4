package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/internal/domain"
)

// FrameHandler maneja las peticiones HTTP para Frame (protegido).
type FrameHandler struct {
	uc *usecase.FrameUseCase
}

// NewFrameHandler construye el handler.
func NewFrameHandler(uc *usecase.FrameUseCase) *FrameHandler {
	return &FrameHandler{uc: uc}
}

// Create godoc
// @Summary      Crear montura
// @Tags         frames
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFrameRequest  true  "Datos de la montura"
// @Success      201   {object}  dto.FrameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/frames [post]
func (h *FrameHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "brand y model son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la montura ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener montura por ID
// @Tags         frames
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la montura"
// @Success      200  {object}  dto.FrameResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/frames/{id} [get]
func (h *FrameHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "montura no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar monturas
// @Tags         frames
// @Security     Bearer
// @Produce      json
// @Param        brand   query  string  false  "Filtro por marca"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.FrameListResponse
// @Router       /api/frames [get]
func (h *FrameHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.UserContext(), c.Query("brand"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar montura
// @Tags         frames
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la montura"
// @Param        body  body  dto.UpdateFrameRequest  true  "Campos a actualizar (la cantidad se ajusta vía /stock)"
// @Success      200   {object}  dto.FrameResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/frames/{id} [put]
func (h *FrameHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de montura inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "montura no encontrada"})
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock de una montura
// @Tags         frames
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la montura"
// @Param        body  body  dto.AdjustFrameStockRequest  true  "Delta (positivo o negativo, distinto de cero)"
// @Success      200   {object}  dto.FrameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/frames/{id}/stock [post]
func (h *FrameHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustFrameStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.UserContext(), c.Params("id"), in.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta debe ser distinto de cero"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "montura no encontrada"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el ajuste dejaría la cantidad negativa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar montura
// @Tags         frames
// @Security     Bearer
// @Param        id  path  string  true  "ID de la montura"
// @Success      204
// @Router       /api/frames/{id} [delete]
func (h *FrameHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
