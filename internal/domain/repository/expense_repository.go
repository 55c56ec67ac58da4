package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// CategoryTotal total de gasto por categoría en un período.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Expense, error)
	// TotalsByCategory agrega los gastos del período [from, to) por categoría.
	TotalsByCategory(ctx context.Context, from, to time.Time) ([]CategoryTotal, error)
}
