package entity

import "time"

// Staff representa un miembro del personal de la óptica.
type Staff struct {
	ID        string
	FirstName string
	LastName  string
	Role      string
	Phone     string
	Email     string
	Address   string
	HiredOn   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
