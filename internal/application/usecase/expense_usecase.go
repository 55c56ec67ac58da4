package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos más totales por categoría.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Monto debe ser positivo.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.IncurredOn.IsZero() {
		in.IncurredOn = time.Now()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Amount:      in.Amount,
		IncurredOn:  in.IncurredOn,
		PaidVia:     in.PaidVia,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto por ID. Nil si no existe.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// Update actualiza campos presentes; monto debe seguir positivo.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.IncurredOn != nil {
		expense.IncurredOn = *in.IncurredOn
	}
	if in.PaidVia != nil {
		expense.PaidVia = *in.PaidVia
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos por categoría con paginación (categoría vacía = todas).
func (uc *ExpenseUseCase) List(ctx context.Context, category string, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.List(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// TotalsByCategory agrega los gastos del período [from, to) por categoría.
func (uc *ExpenseUseCase) TotalsByCategory(ctx context.Context, from, to time.Time) ([]dto.CategoryTotalResponse, error) {
	totals, err := uc.repo.TotalsByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.CategoryTotalResponse{Category: t.Category, Total: t.Total})
	}
	return out, nil
}

// Delete elimina un gasto por ID.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		IncurredOn:  e.IncurredOn,
		PaidVia:     e.PaidVia,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
