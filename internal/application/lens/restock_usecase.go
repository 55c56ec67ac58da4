package lens

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// RestockUseCase aplica un lote de entradas de stock contra el almacén de registros.
//
// Política de matching: celda (sph, cyl) MÁS la tupla completa de atributos
// descriptivos. Dos líneas con el mismo poder pero coating distinto se mantienen
// como registros separados; solo un match exacto acumula cantidad.
type RestockUseCase struct {
	txRunner TxRunner
	cache    GridCache
	log      *logger.Logger
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(txRunner TxRunner, cache GridCache, log *logger.Logger) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner, cache: cache, log: log}
}

// AddStock procesa cada celda con cantidad pendiente positiva: si existe una línea
// con la misma celda y la misma tupla de atributos, acumula cantidad sobre ella;
// si no, inserta una línea nueva. Una celda fallida no aborta el lote: se acumulan
// éxitos y fallos y se reporta el agregado. Cada celda corre en su propia tx corta;
// las llamadas al almacén son secuenciales.
// Devuelve ErrNoActionableCells si ninguna celda tiene cantidad positiva.
func (uc *RestockUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.BatchResultResponse, error) {
	cells := actionableCells(in.Cells)
	if len(cells) == 0 {
		return nil, ErrNoActionableCells
	}

	result := &dto.BatchResultResponse{Requested: len(cells)}
	for _, cell := range cells {
		if err := uc.addCell(ctx, cell.key, cell.qty, in); err != nil {
			uc.log.Warn().Err(err).Str("cell", cell.key).Int("quantity", cell.qty).
				Msg("restock de celda fallido")
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

// addCell persiste la entrada de una celda dentro de una transacción corta.
func (uc *RestockUseCase) addCell(ctx context.Context, key string, qty int, in dto.AddStockRequest) error {
	sph, cyl, err := optical.ParseCellKey(key)
	if err != nil {
		return err
	}
	attrs := in.Attributes
	return uc.txRunner.Run(ctx, func(lensRepo repository.LensStockRepository) error {
		existing, err := lensRepo.FindByCellAndAttributes(ctx, sph, cyl,
			attrs.LensType, attrs.Thickness, attrs.Colour, attrs.Diameter, attrs.Coating)
		if err != nil {
			return err
		}
		if existing != nil {
			return lensRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+qty, in.Reason, in.Details)
		}
		now := time.Now()
		return lensRepo.Create(ctx, &entity.LensStock{
			ID:        uuid.New().String(),
			Sph:       sph,
			Cyl:       cyl,
			Quantity:  qty,
			LensType:  attrs.LensType,
			Thickness: attrs.Thickness,
			Colour:    attrs.Colour,
			Diameter:  attrs.Diameter,
			Coating:   attrs.Coating,
			Reason:    in.Reason,
			Details:   in.Details,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
}

// pendingCell celda accionable de un lote.
type pendingCell struct {
	key string
	qty int
}

// actionableCells retiene las celdas con cantidad positiva, en orden estable de clave.
// El resultado por celda no depende del orden; ordenar solo da reportes deterministas.
func actionableCells(cells map[string]int) []pendingCell {
	out := make([]pendingCell, 0, len(cells))
	for key, qty := range cells {
		if qty > 0 {
			out = append(out, pendingCell{key: key, qty: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// batchStatus deriva el estado agregado: todo ok, parcial, o nada ok.
func batchStatus(r *dto.BatchResultResponse) string {
	switch {
	case r.Failed == 0:
		return dto.BatchSuccess
	case r.Succeeded == 0:
		return dto.BatchFailure
	default:
		return dto.BatchPartial
	}
}
