package lens

import (
	"context"
	"fmt"
	"sort"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// RemovalUseCase aplica un lote de retiros de stock contra el almacén de registros.
type RemovalUseCase struct {
	lensRepo repository.LensStockRepository
	cache    GridCache
	log      *logger.Logger
}

// NewRemovalUseCase construye el caso de uso.
func NewRemovalUseCase(lensRepo repository.LensStockRepository, cache GridCache, log *logger.Logger) *RemovalUseCase {
	return &RemovalUseCase{lensRepo: lensRepo, cache: cache, log: log}
}

// RemoveStock procesa cada celda con retiro solicitado positivo. Por celda: rechaza
// (sin abortar el lote) si no hay líneas o si el retiro excede el total disponible;
// si alcanza, drena primero las líneas de menor cantidad (consolida el inventario en
// menos líneas con el tiempo) con un update por línea tocada. Ninguna línea queda
// negativa; una línea en cero se conserva.
// Devuelve ErrNoActionableCells si ninguna celda tiene cantidad positiva.
func (uc *RemovalUseCase) RemoveStock(ctx context.Context, in dto.RemoveStockRequest) (*dto.BatchResultResponse, error) {
	cells := actionableCells(in.Cells)
	if len(cells) == 0 {
		return nil, ErrNoActionableCells
	}

	// Working set actual, indexado por celda (recalculado por lote, no por celda).
	records, err := uc.lensRepo.List(ctx, optical.StockFilter{})
	if err != nil {
		return nil, fmt.Errorf("cargar working set: %w", err)
	}
	ix := optical.NewGridIndex(records)

	result := &dto.BatchResultResponse{Requested: len(cells)}
	for _, cell := range cells {
		if err := uc.removeCell(ctx, ix, cell.key, cell.qty, in); err != nil {
			uc.log.Warn().Err(err).Str("cell", cell.key).Int("quantity", cell.qty).
				Msg("retiro de celda fallido")
			result.Failed++
			result.Failures = append(result.Failures, toCellFailure(cell.key, err))
			continue
		}
		result.Succeeded++
	}

	if result.Succeeded > 0 {
		uc.cache.Invalidate(ctx)
	}
	result.Status = batchStatus(result)
	return result, nil
}

// removeCell valida y drena una celda. El retiro se distribuye de menor a mayor
// cantidad actual; el decremento por línea nunca excede su cantidad.
func (uc *RemovalUseCase) removeCell(ctx context.Context, ix *optical.GridIndex, key string, qty int, in dto.RemoveStockRequest) error {
	if _, _, err := optical.ParseCellKey(key); err != nil {
		return err
	}

	bucket := ix.Records(key)
	if len(bucket) == 0 {
		return fmt.Errorf("celda %s sin líneas de stock: %w", key, domain.ErrNotFound)
	}
	available := ix.Total(key)
	if qty > available {
		return fmt.Errorf("celda %s: retiro de %d excede el disponible %d (faltan %d): %w",
			key, qty, available, qty-available, domain.ErrInsufficientStock)
	}

	// Menor cantidad primero; las líneas casi vacías se drenan antes que las grandes.
	sorted := make([]*entity.LensStock, len(bucket))
	copy(sorted, bucket)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Quantity < sorted[j].Quantity })

	remaining := qty
	for _, rec := range sorted {
		if remaining == 0 {
			break
		}
		take := rec.Quantity
		if take > remaining {
			take = remaining
		}
		newQty := rec.Quantity - take
		if err := uc.lensRepo.UpdateQuantity(ctx, rec.ID, newQty, in.Reason, in.Details); err != nil {
			return err
		}
		rec.Quantity = newQty
		remaining -= take
	}
	return nil
}
