package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

// FrameUseCase casos de uso CRUD para monturas. La cantidad solo cambia vía
// AdjustStock (nunca en Update), con la misma regla de no-negatividad que los lentes.
type FrameUseCase struct {
	repo repository.FrameRepository
}

// NewFrameUseCase construye el caso de uso.
func NewFrameUseCase(repo repository.FrameRepository) *FrameUseCase {
	return &FrameUseCase{repo: repo}
}

// Create registra un modelo de montura.
func (uc *FrameUseCase) Create(ctx context.Context, in dto.CreateFrameRequest) (*dto.FrameResponse, error) {
	if in.Brand == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	frame := &entity.Frame{
		ID:            uuid.New().String(),
		Brand:         in.Brand,
		Model:         in.Model,
		Colour:        in.Colour,
		Material:      in.Material,
		Size:          in.Size,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Quantity:      in.Quantity,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, frame); err != nil {
		return nil, err
	}
	return toFrameResponse(frame), nil
}

// GetByID obtiene una montura por ID. Nil si no existe.
func (uc *FrameUseCase) GetByID(ctx context.Context, id string) (*dto.FrameResponse, error) {
	frame, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, nil
	}
	return toFrameResponse(frame), nil
}

// Update actualiza campos presentes. No toca Quantity.
func (uc *FrameUseCase) Update(ctx context.Context, id string, in dto.UpdateFrameRequest) (*dto.FrameResponse, error) {
	frame, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, nil
	}
	if in.Brand != nil {
		frame.Brand = *in.Brand
	}
	if in.Model != nil {
		frame.Model = *in.Model
	}
	if in.Colour != nil {
		frame.Colour = *in.Colour
	}
	if in.Material != nil {
		frame.Material = *in.Material
	}
	if in.Size != nil {
		frame.Size = *in.Size
	}
	if in.PurchasePrice != nil {
		frame.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		frame.SellingPrice = *in.SellingPrice
	}
	if in.Status != nil {
		frame.Status = *in.Status
	}
	frame.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, frame); err != nil {
		return nil, err
	}
	return toFrameResponse(frame), nil
}

// AdjustStock suma delta a la cantidad (negativo = salida). ErrInsufficientStock
// si el resultado quedaría negativo.
func (uc *FrameUseCase) AdjustStock(ctx context.Context, id string, delta int) (*dto.FrameResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.AdjustQuantity(ctx, id, delta); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista monturas por marca con paginación (marca vacía = todas).
func (uc *FrameUseCase) List(ctx context.Context, brand string, limit, offset int) (*dto.FrameListResponse, error) {
	list, err := uc.repo.List(ctx, brand, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FrameResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFrameResponse(f))
	}
	return &dto.FrameListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una montura por ID.
func (uc *FrameUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toFrameResponse(f *entity.Frame) *dto.FrameResponse {
	if f == nil {
		return nil
	}
	return &dto.FrameResponse{
		ID:            f.ID,
		Brand:         f.Brand,
		Model:         f.Model,
		Colour:        f.Colour,
		Material:      f.Material,
		Size:          f.Size,
		PurchasePrice: f.PurchasePrice,
		SellingPrice:  f.SellingPrice,
		Quantity:      f.Quantity,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
