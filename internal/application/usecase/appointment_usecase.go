package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// ReminderSender envía un recordatorio de cita al paciente (SMS u otro canal).
type ReminderSender interface {
	Send(ctx context.Context, phone, message string) error
}

// AppointmentUseCase casos de uso de citas: CRUD más despacho de recordatorios.
type AppointmentUseCase struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	reminder    ReminderSender
	log         *logger.Logger
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	reminder ReminderSender,
	log *logger.Logger,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, patientRepo: patientRepo, reminder: reminder, log: log}
}

// Create agenda una cita para un paciente existente.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PatientID == "" || in.ScheduledAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	patient, err := uc.patientRepo.GetByID(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	if in.DurationMin <= 0 {
		in.DurationMin = 30
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		PatientID:   in.PatientID,
		ScheduledAt: in.ScheduledAt,
		DurationMin: in.DurationMin,
		Purpose:     in.Purpose,
		Status:      entity.AppointmentBooked,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID obtiene una cita por ID. Nil si no existe.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, nil
	}
	return toAppointmentResponse(appt), nil
}

// Update actualiza campos presentes; valida transiciones de estado.
func (uc *AppointmentUseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, nil
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.AppointmentBooked, entity.AppointmentCompleted, entity.AppointmentCancelled:
			appt.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ScheduledAt != nil {
		appt.ScheduledAt = *in.ScheduledAt
	}
	if in.DurationMin != nil {
		appt.DurationMin = *in.DurationMin
	}
	if in.Purpose != nil {
		appt.Purpose = *in.Purpose
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List lista citas por estado con paginación (estado vacío = todas).
func (uc *AppointmentUseCase) List(ctx context.Context, status string, limit, offset int) (*dto.AppointmentListResponse, error) {
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByPatient lista todas las citas de un paciente.
func (uc *AppointmentUseCase) ListByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return items, nil
}

// Delete elimina una cita por ID.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SendDueReminders envía recordatorios para citas agendadas dentro de la ventana
// [ahora, ahora+window) que aún no tienen recordatorio. Un envío fallido no detiene
// los demás. Devuelve cuántos recordatorios se enviaron.
func (uc *AppointmentUseCase) SendDueReminders(ctx context.Context, window time.Duration) (int, error) {
	now := time.Now()
	due, err := uc.repo.ListBetween(ctx, now, now.Add(window))
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, appt := range due {
		if appt.Status != entity.AppointmentBooked {
			continue
		}
		patient, err := uc.patientRepo.GetByID(ctx, appt.PatientID)
		if err != nil || patient == nil || patient.Phone == "" {
			continue
		}
		msg := fmt.Sprintf("Hola %s, le recordamos su cita el %s.",
			patient.FirstName, appt.ScheduledAt.Format("02/01/2006 15:04"))
		if err := uc.reminder.Send(ctx, patient.Phone, msg); err != nil {
			uc.log.Warn().Err(err).Str("appointment_id", appt.ID).Msg("recordatorio fallido")
			continue
		}
		if err := uc.repo.MarkReminded(ctx, appt.ID, now); err != nil {
			uc.log.Warn().Err(err).Str("appointment_id", appt.ID).Msg("marcar recordatorio")
			continue
		}
		sent++
	}
	return sent, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		ScheduledAt: a.ScheduledAt,
		DurationMin: a.DurationMin,
		Purpose:     a.Purpose,
		Status:      a.Status,
		Notes:       a.Notes,
		ReminderAt:  a.ReminderAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
