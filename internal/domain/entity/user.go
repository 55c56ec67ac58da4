package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin        = "admin"
	RoleOptometrist  = "optometrist"
	RoleReceptionist = "receptionist"
)

// User representa una cuenta con acceso a la consola.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | optometrist | receptionist
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
