package lens

import (
	"errors"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
)

// toCellFailure clasifica el error de una celda en el código del resumen del lote.
func toCellFailure(cell string, err error) dto.CellFailure {
	code := "STORE"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		code = "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		code = "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		code = "INSUFFICIENT_STOCK"
	}
	return dto.CellFailure{Cell: cell, Code: code, Message: err.Error()}
}
