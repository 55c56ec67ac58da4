package repository

import (
	"context"

	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// PatientRepository define el puerto de persistencia para pacientes.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id string) error
	// List pagina por fecha de creación descendente; search filtra por nombre/teléfono.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Patient, error)
}
