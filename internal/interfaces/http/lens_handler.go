package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/domain"
)

// LensHandler maneja las peticiones HTTP de la grilla de stock de lentes (protegido).
type LensHandler struct {
	grid    *lens.GridUseCase
	restock *lens.RestockUseCase
	removal *lens.RemovalUseCase
	report  *lens.ReportUseCase
}

// NewLensHandler construye el handler.
func NewLensHandler(grid *lens.GridUseCase, restock *lens.RestockUseCase, removal *lens.RemovalUseCase, report *lens.ReportUseCase) *LensHandler {
	return &LensHandler{grid: grid, restock: restock, removal: removal, report: report}
}

// GetGrid godoc
// @Summary      Grilla de stock esfera/cilindro
// @Tags         lenses
// @Security     Bearer
// @Produce      json
// @Param        lens_type       query  string  false  "Filtro por tipo"
// @Param        lens_thickness  query  string  false  "Filtro por grosor"
// @Param        lens_colour     query  string  false  "Filtro por color"
// @Param        lens_diameter   query  string  false  "Filtro por diámetro"
// @Param        lens_coating    query  string  false  "Filtro por tratamiento"
// @Success      200  {object}  dto.GridResponse
// @Router       /api/lenses/grid [get]
func (h *LensHandler) GetGrid(c *fiber.Ctx) error {
	var q dto.StockFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.grid.GetGrid(c.UserContext(), q.ToFilter())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetCell godoc
// @Summary      Detalle de una celda de la grilla
// @Tags         lenses
// @Security     Bearer
// @Produce      json
// @Param        cell  path  string  true  "Clave de celda (ej. -2.00_0.50)"
// @Success      200  {object}  dto.CellDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lenses/grid/{cell} [get]
func (h *LensHandler) GetCell(c *fiber.Ctx) error {
	key := c.Params("cell")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CELL", Message: "clave de celda requerida"})
	}
	out, err := h.grid.GetCell(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave de celda inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRecords godoc
// @Summary      Listar líneas de stock de lentes
// @Tags         lenses
// @Security     Bearer
// @Produce      json
// @Param        lens_type     query  string  false  "Filtro por tipo"
// @Param        lens_coating  query  string  false  "Filtro por tratamiento"
// @Success      200  {array}  dto.LensStockResponse
// @Router       /api/lenses [get]
func (h *LensHandler) ListRecords(c *fiber.Ctx) error {
	var q dto.StockFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.grid.ListRecords(c.UserContext(), q.ToFilter())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApplyBulkRange godoc
// @Summary      Poblar un rango rectangular del working set pendiente
// @Tags         lenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkRangeRequest  true  "Rango, cantidad, unidad y working set actual"
// @Success      200   {object}  dto.BulkRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lenses/bulk-range [post]
func (h *LensHandler) ApplyBulkRange(c *fiber.Ctx) error {
	var in dto.BulkRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := lens.ApplyBulkRange(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad positiva y unidad single|pair requeridas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddStock godoc
// @Summary      Registrar entrada de stock por lote de celdas
// @Tags         lenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Celdas pendientes, atributos y motivo"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.BatchResultResponse
// @Router       /api/lenses/add [post]
func (h *LensHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.restock.AddStock(c.UserContext(), in)
	if err != nil {
		return batchError(c, err)
	}
	return batchResult(c, out)
}

// RemoveStock godoc
// @Summary      Registrar salida de stock por lote de celdas
// @Tags         lenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveStockRequest  true  "Celdas a retirar y motivo"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.BatchResultResponse
// @Router       /api/lenses/remove [post]
func (h *LensHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.RemoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.removal.RemoveStock(c.UserContext(), in)
	if err != nil {
		return batchError(c, err)
	}
	return batchResult(c, out)
}

// StockReportPDF godoc
// @Summary      Reporte imprimible de stock de lentes (PDF)
// @Tags         lenses
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/lenses/report.pdf [get]
func (h *LensHandler) StockReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.report.GeneratePDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("stock-lentes-%s.pdf", time.Now().Format("20060102"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// batchError mapea los errores de lote a HTTP.
func batchError(c *fiber.Ctx, err error) error {
	if errors.Is(err, lens.ErrNoActionableCells) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_OP", Message: "el lote no tiene celdas con cantidad positiva"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// batchResult responde 200 para success/partial y 422 cuando todas las celdas fallaron.
func batchResult(c *fiber.Ctx, out *dto.BatchResultResponse) error {
	if out.Status == dto.BatchFailure {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
	}
	return c.JSON(out)
}
