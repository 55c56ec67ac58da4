package lens

import (
	"context"
	"fmt"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/optical"
)

// ApplyBulkRange aplica un rango rectangular sobre el working set pendiente del
// cliente y lo devuelve actualizado. Solo afecta el estado transitorio del formulario;
// nunca toca el almacén de registros. El valor por celda SOBRESCRIBE lo pendiente.
func ApplyBulkRange(_ context.Context, in dto.BulkRangeRequest) (*dto.BulkRangeResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if in.Unit != optical.UnitSingle && in.Unit != optical.UnitPair {
		return nil, fmt.Errorf("unidad %q desconocida: %w", in.Unit, domain.ErrInvalidInput)
	}

	pending := in.Pending
	if pending == nil {
		pending = make(map[string]int)
	}
	r := optical.BulkRange{
		StartSph: in.StartSph,
		EndSph:   in.EndSph,
		StartCyl: in.StartCyl,
		EndCyl:   in.EndCyl,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	}
	touched := r.Apply(pending)
	return &dto.BulkRangeResponse{Pending: pending, CellsTouched: touched}, nil
}
