package repository

import (
	"context"
	"time"

	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error)
	// ListBetween devuelve citas agendadas dentro de la ventana [from, to) sin
	// recordatorio enviado todavía (para el despacho de recordatorios).
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Appointment, error)
	MarkReminded(ctx context.Context, id string, at time.Time) error
}
