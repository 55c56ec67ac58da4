package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/internal/domain"
)

// EnquiryHandler maneja las peticiones HTTP para Enquiry (protegido).
type EnquiryHandler struct {
	uc *usecase.EnquiryUseCase
}

// NewEnquiryHandler construye el handler.
func NewEnquiryHandler(uc *usecase.EnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar consulta comercial
// @Tags         enquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnquiryRequest  true  "Datos de la consulta"
// @Success      201   {object}  dto.EnquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/enquiries [post]
func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y subject son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener consulta por ID
// @Tags         enquiries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la consulta"
// @Success      200  {object}  dto.EnquiryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/enquiries/{id} [get]
func (h *EnquiryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar consultas
// @Tags         enquiries
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado (open|closed)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.EnquiryListResponse
// @Router       /api/enquiries [get]
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.UserContext(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar consulta
// @Tags         enquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la consulta"
// @Param        body  body  dto.UpdateEnquiryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EnquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/enquiries/{id} [put]
func (h *EnquiryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de consulta inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar consulta
// @Tags         enquiries
// @Security     Bearer
// @Param        id  path  string  true  "ID de la consulta"
// @Success      204
// @Router       /api/enquiries/{id} [delete]
func (h *EnquiryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
