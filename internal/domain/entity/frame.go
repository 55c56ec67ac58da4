package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frame representa un modelo de montura en inventario.
// Quantity nunca es negativa (misma regla que el stock de lentes).
type Frame struct {
	ID            string
	Brand         string
	Model         string
	Colour        string
	Material      string
	Size          string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Quantity      int
	Status        string // active | discontinued
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
