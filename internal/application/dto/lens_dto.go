package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/domain/optical"
)

// LensAttributes tupla de atributos descriptivos compartida por un lote de mutaciones.
type LensAttributes struct {
	LensType  string `json:"lens_type"`
	Thickness string `json:"lens_thickness"`
	Colour    string `json:"lens_colour"`
	Diameter  string `json:"lens_diameter"`
	Coating   string `json:"lens_coating"`
}

// StockFilterQuery filtros opcionales de igualdad para la grilla (query params).
type StockFilterQuery struct {
	LensType  string `query:"lens_type"`
	Thickness string `query:"lens_thickness"`
	Colour    string `query:"lens_colour"`
	Diameter  string `query:"lens_diameter"`
	Coating   string `query:"lens_coating"`
}

// ToFilter convierte los query params al filtro de dominio.
func (q StockFilterQuery) ToFilter() optical.StockFilter {
	return optical.StockFilter{
		LensType:  q.LensType,
		Thickness: q.Thickness,
		Colour:    q.Colour,
		Diameter:  q.Diameter,
		Coating:   q.Coating,
	}
}

// BulkRangeRequest rango rectangular a poblar sobre el working set pendiente.
// end_* omitidos equivalen al start correspondiente.
type BulkRangeRequest struct {
	StartSph decimal.Decimal  `json:"start_sph"`
	EndSph   *decimal.Decimal `json:"end_sph"`
	StartCyl decimal.Decimal  `json:"start_cyl"`
	EndCyl   *decimal.Decimal `json:"end_cyl"`
	Quantity int              `json:"quantity"`
	Unit     string           `json:"unit"` // single | pair
	// Pending es el working set actual del cliente; la respuesta lo devuelve actualizado.
	Pending map[string]int `json:"pending"`
}

// BulkRangeResponse working set pendiente tras aplicar el rango.
type BulkRangeResponse struct {
	Pending      map[string]int `json:"pending"`
	CellsTouched int            `json:"cells_touched"`
}

// AddStockRequest lote de restock: cantidad pendiente positiva por clave de celda
// más metadatos compartidos.
type AddStockRequest struct {
	Cells      map[string]int `json:"cells"`
	Attributes LensAttributes `json:"attributes"`
	Reason     string         `json:"reason"`
	Details    string         `json:"details"`
}

// RemoveStockRequest lote de retiro: cantidad a retirar por clave de celda.
type RemoveStockRequest struct {
	Cells   map[string]int `json:"cells"`
	Reason  string         `json:"reason"`
	Details string         `json:"details"`
}

// CellFailure detalle de una celda fallida dentro de un lote.
type CellFailure struct {
	Cell    string `json:"cell"`
	Code    string `json:"code"` // VALIDATION | NOT_FOUND | INSUFFICIENT_STOCK | STORE
	Message string `json:"message"`
}

// Estado agregado de un lote.
const (
	BatchSuccess = "success"
	BatchPartial = "partial"
	BatchFailure = "failure"
)

// BatchResultResponse resumen de un lote de mutaciones de grilla. El lote nunca se
// aborta por una celda fallida: se procesan todas y se reporta el agregado.
type BatchResultResponse struct {
	Status    string        `json:"status"` // success | partial | failure
	Requested int           `json:"requested"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []CellFailure `json:"failures,omitempty"`
}

// GridCellResponse estado agregado de una celda para presentación.
type GridCellResponse struct {
	Total int    `json:"total"`
	Level string `json:"level"` // out_of_stock | low | medium | high
}

// GridResponse proyección de la grilla completa: ejes fijos + celdas con stock.
type GridResponse struct {
	SphAxis []string                    `json:"sph_axis"`
	CylAxis []string                    `json:"cyl_axis"`
	Cells   map[string]GridCellResponse `json:"cells"`
}

// LensStockResponse una línea de stock persistida.
type LensStockResponse struct {
	ID        string          `json:"id"`
	Sph       decimal.Decimal `json:"sph"`
	Cyl       decimal.Decimal `json:"cyl"`
	Quantity  int             `json:"quantity"`
	LensType  string          `json:"lens_type,omitempty"`
	Thickness string          `json:"lens_thickness,omitempty"`
	Colour    string          `json:"lens_colour,omitempty"`
	Diameter  string          `json:"lens_diameter,omitempty"`
	Coating   string          `json:"lens_coating,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Details   string          `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CellDetailResponse líneas de una celda concreta (vista de detalle del dialog).
type CellDetailResponse struct {
	Cell    string              `json:"cell"`
	Total   int                 `json:"total"`
	Level   string              `json:"level"`
	Records []LensStockResponse `json:"records"`
}
