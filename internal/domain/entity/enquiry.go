package entity

import "time"

// Estados de una consulta comercial.
const (
	EnquiryOpen   = "open"
	EnquiryClosed = "closed"
)

// Enquiry representa una consulta comercial entrante (teléfono, web, mostrador).
type Enquiry struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Subject   string
	Message   string
	Status    string // open | closed
	CreatedAt time.Time
	UpdatedAt time.Time
}
