package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo de la práctica.
type Expense struct {
	ID          string
	Category    string
	Amount      decimal.Decimal
	IncurredOn  time.Time
	PaidVia     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
