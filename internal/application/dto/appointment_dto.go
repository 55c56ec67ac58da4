package dto

import "time"

// CreateAppointmentRequest alta de cita.
type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Purpose     string    `json:"purpose"`
	Notes       string    `json:"notes"`
}

// UpdateAppointmentRequest actualización parcial de cita.
type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	DurationMin *int       `json:"duration_min"`
	Purpose     *string    `json:"purpose"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
}

// AppointmentResponse cita en respuestas.
type AppointmentResponse struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	DurationMin int        `json:"duration_min"`
	Purpose     string     `json:"purpose,omitempty"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	ReminderAt  *time.Time `json:"reminder_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AppointmentListResponse listado paginado de citas.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
