package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFrameRequest alta de montura.
type CreateFrameRequest struct {
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Colour        string          `json:"colour"`
	Material      string          `json:"material"`
	Size          string          `json:"size"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      int             `json:"quantity"`
}

// UpdateFrameRequest actualización parcial de montura (cantidad se maneja aparte).
type UpdateFrameRequest struct {
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	Colour        *string          `json:"colour"`
	Material      *string          `json:"material"`
	Size          *string          `json:"size"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Status        *string          `json:"status"`
}

// AdjustFrameStockRequest ajuste de cantidad: delta positivo (entrada) o negativo (salida).
type AdjustFrameStockRequest struct {
	Delta int `json:"delta"`
}

// FrameResponse montura en respuestas.
type FrameResponse struct {
	ID            string          `json:"id"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Colour        string          `json:"colour,omitempty"`
	Material      string          `json:"material,omitempty"`
	Size          string          `json:"size,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FrameListResponse listado paginado de monturas.
type FrameListResponse struct {
	Items []FrameResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
