package dto

import "time"

// CreateEnquiryRequest alta de consulta comercial.
type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateEnquiryRequest actualización parcial de consulta.
type UpdateEnquiryRequest struct {
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// EnquiryResponse consulta en respuestas.
type EnquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnquiryListResponse listado paginado de consultas.
type EnquiryListResponse struct {
	Items []EnquiryResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
