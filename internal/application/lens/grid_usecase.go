package lens

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// GridUseCase proyecciones de solo lectura de la grilla de lentes.
// El working set es un cache de paso refrescable: se lee del almacén (o del cache
// con TTL corto) y se reproyecta en memoria; nunca hay write-back.
type GridUseCase struct {
	lensRepo repository.LensStockRepository
	cache    GridCache
	log      *logger.Logger
}

// NewGridUseCase construye el caso de uso.
func NewGridUseCase(lensRepo repository.LensStockRepository, cache GridCache, log *logger.Logger) *GridUseCase {
	return &GridUseCase{lensRepo: lensRepo, cache: cache, log: log}
}

// workingSet devuelve el conjunto completo de líneas, del cache si está vigente.
func (uc *GridUseCase) workingSet(ctx context.Context) ([]*entity.LensStock, error) {
	if records, ok := uc.cache.GetWorkingSet(ctx); ok {
		return records, nil
	}
	records, err := uc.lensRepo.List(ctx, optical.StockFilter{})
	if err != nil {
		return nil, fmt.Errorf("cargar working set: %w", err)
	}
	uc.cache.SetWorkingSet(ctx, records)
	return records, nil
}

// GetGrid proyecta la grilla: ejes fijos más el total y nivel de cada celda con
// stock. El filtro (conjunción de igualdades opcionales) se evalúa en memoria
// sobre el working set.
func (uc *GridUseCase) GetGrid(ctx context.Context, filter optical.StockFilter) (*dto.GridResponse, error) {
	records, err := uc.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	ix := optical.NewGridIndex(filter.Apply(records))

	cells := make(map[string]dto.GridCellResponse)
	for _, key := range ix.Cells() {
		total := ix.Total(key)
		cells[key] = dto.GridCellResponse{Total: total, Level: optical.StockLevelFor(total)}
	}

	return &dto.GridResponse{
		SphAxis: axisStrings(optical.SphereAxis()),
		CylAxis: axisStrings(optical.CylinderAxis()),
		Cells:   cells,
	}, nil
}

// GetCell devuelve el detalle de una celda: sus líneas, total y nivel.
// Una celda sin líneas es un detalle vacío con total 0, no un error.
func (uc *GridUseCase) GetCell(ctx context.Context, key string) (*dto.CellDetailResponse, error) {
	if _, _, err := optical.ParseCellKey(key); err != nil {
		return nil, err
	}
	records, err := uc.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	ix := optical.NewGridIndex(records)

	bucket := ix.Records(key)
	items := make([]dto.LensStockResponse, 0, len(bucket))
	for _, r := range bucket {
		items = append(items, toLensStockResponse(r))
	}
	total := ix.Total(key)
	return &dto.CellDetailResponse{
		Cell:    key,
		Total:   total,
		Level:   optical.StockLevelFor(total),
		Records: items,
	}, nil
}

// ListRecords lista líneas de stock aplicando el filtro en el almacén (vista tabla).
func (uc *GridUseCase) ListRecords(ctx context.Context, filter optical.StockFilter) ([]dto.LensStockResponse, error) {
	records, err := uc.lensRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LensStockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toLensStockResponse(r))
	}
	return out, nil
}

// LowStockCells devuelve las celdas en nivel low u out_of_stock entre las que tienen
// al menos una línea registrada (para el digest diario y el reporte).
func (uc *GridUseCase) LowStockCells(ctx context.Context) (map[string]dto.GridCellResponse, error) {
	records, err := uc.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	ix := optical.NewGridIndex(records)

	low := make(map[string]dto.GridCellResponse)
	for _, key := range ix.Cells() {
		total := ix.Total(key)
		level := optical.StockLevelFor(total)
		if level == optical.LevelLow || level == optical.LevelOutOfStock {
			low[key] = dto.GridCellResponse{Total: total, Level: level}
		}
	}
	return low, nil
}

func axisStrings(axis []decimal.Decimal) []string {
	out := make([]string, 0, len(axis))
	for _, v := range axis {
		out = append(out, v.StringFixed(2))
	}
	return out
}

func toLensStockResponse(r *entity.LensStock) dto.LensStockResponse {
	return dto.LensStockResponse{
		ID:        r.ID,
		Sph:       r.Sph,
		Cyl:       r.Cyl,
		Quantity:  r.Quantity,
		LensType:  r.LensType,
		Thickness: r.Thickness,
		Colour:    r.Colour,
		Diameter:  r.Diameter,
		Coating:   r.Coating,
		Reason:    r.Reason,
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
