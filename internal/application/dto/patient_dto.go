package dto

import "time"

// CreatePatientRequest alta de paciente.
type CreatePatientRequest struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	DOB        *time.Time `json:"dob"`
	Sex        string     `json:"sex"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Address    string     `json:"address"`
	Occupation string     `json:"occupation"`
	Notes      string     `json:"notes"`
}

// UpdatePatientRequest actualización parcial de paciente (nil = sin cambio).
type UpdatePatientRequest struct {
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	DOB        *time.Time `json:"dob"`
	Sex        *string    `json:"sex"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
	Address    *string    `json:"address"`
	Occupation *string    `json:"occupation"`
	Notes      *string    `json:"notes"`
}

// PatientResponse paciente en respuestas.
type PatientResponse struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	DOB        *time.Time `json:"dob,omitempty"`
	Sex        string     `json:"sex,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	Address    string     `json:"address,omitempty"`
	Occupation string     `json:"occupation,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// PatientListResponse listado paginado de pacientes.
type PatientListResponse struct {
	Items []PatientResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
