package entity

import "time"

// Estados de una cita.
const (
	AppointmentBooked    = "booked"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment representa una cita de un paciente (examen, ajuste, entrega, etc.).
type Appointment struct {
	ID          string
	PatientID   string
	ScheduledAt time.Time
	DurationMin int
	Purpose     string
	Status      string // booked | completed | cancelled
	Notes       string
	ReminderAt  *time.Time // momento del último recordatorio enviado, nil si ninguno
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
