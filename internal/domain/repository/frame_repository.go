package repository

import (
	"context"

	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// FrameRepository define el puerto de persistencia para monturas.
type FrameRepository interface {
	Create(ctx context.Context, frame *entity.Frame) error
	GetByID(ctx context.Context, id string) (*entity.Frame, error)
	Update(ctx context.Context, frame *entity.Frame) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, brand string, limit, offset int) ([]*entity.Frame, error)
	// AdjustQuantity suma delta (puede ser negativo) garantizando quantity >= 0 en
	// una sola sentencia. Devuelve ErrInsufficientStock si dejaría la cantidad negativa.
	AdjustQuantity(ctx context.Context, id string, delta int) error
}
