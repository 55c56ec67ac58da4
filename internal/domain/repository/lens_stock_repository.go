package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
)

// LensStockRepository define el puerto del almacén de registros para stock de lentes.
// La grilla en memoria es un working set refrescable; toda mutación va directo al
// almacén y el working set se refetchea después.
type LensStockRepository interface {
	Create(ctx context.Context, lens *entity.LensStock) error
	GetByID(ctx context.Context, id string) (*entity.LensStock, error)
	// List devuelve las líneas que cumplen el filtro (filtro vacío = todas).
	List(ctx context.Context, filter optical.StockFilter) ([]*entity.LensStock, error)
	// FindByCellAndAttributes busca una línea exacta: celda (sph, cyl) más la tupla
	// completa de atributos descriptivos (vacío cuenta como igual a vacío).
	// Nil si no existe.
	FindByCellAndAttributes(ctx context.Context, sph, cyl decimal.Decimal, lensType, thickness, colour, diameter, coating string) (*entity.LensStock, error)
	// UpdateQuantity fija la cantidad de una línea y refresca metadatos de auditoría.
	UpdateQuantity(ctx context.Context, id string, quantity int, reason, details string) error
	Delete(ctx context.Context, id string) error
}
