package lens

import (
	"context"

	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un repositorio
// atado a esa tx. Cada celda de un lote se persiste en su propia transacción corta:
// el lote como un todo NO es transaccional (una caída a mitad deja estado parcial,
// aceptable porque cada celda es independiente).
type TxRunner interface {
	Run(ctx context.Context, fn func(lensRepo repository.LensStockRepository) error) error
}

// GridCache cachea el working set de la grilla entre lecturas. Es un cache de paso
// (read-through) con TTL corto; toda mutación lo invalida. ok=false significa miss
// o cache desactivado, nunca un error visible al caller.
type GridCache interface {
	GetWorkingSet(ctx context.Context) ([]*entity.LensStock, bool)
	SetWorkingSet(ctx context.Context, records []*entity.LensStock)
	Invalidate(ctx context.Context)
}

// ReportGenerator genera el PDF del reporte de stock de lentes.
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, report *StockReport) ([]byte, error)
}
