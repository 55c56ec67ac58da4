package entity

import "time"

// Patient representa un paciente de la óptica.
type Patient struct {
	ID         string
	FirstName  string
	LastName   string
	DOB        *time.Time
	Sex        string
	Phone      string
	Email      string
	Address    string
	Occupation string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
