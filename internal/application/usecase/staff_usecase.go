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

// StaffUseCase casos de uso CRUD para el personal.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Create registra un miembro del personal.
func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	staff := &entity.Staff{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		HiredOn:   in.HiredOn,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// GetByID obtiene un miembro por ID. Nil si no existe.
func (uc *StaffUseCase) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, nil
	}
	return toStaffResponse(staff), nil
}

// Update actualiza campos presentes.
func (uc *StaffUseCase) Update(ctx context.Context, id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		staff.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		staff.LastName = *in.LastName
	}
	if in.Role != nil {
		staff.Role = *in.Role
	}
	if in.Phone != nil {
		staff.Phone = *in.Phone
	}
	if in.Email != nil {
		staff.Email = *in.Email
	}
	if in.Address != nil {
		staff.Address = *in.Address
	}
	if in.HiredOn != nil {
		staff.HiredOn = in.HiredOn
	}
	staff.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// List lista el personal con paginación.
func (uc *StaffUseCase) List(ctx context.Context, limit, offset int) (*dto.StaffListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffResponse(s))
	}
	return &dto.StaffListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un miembro por ID.
func (uc *StaffUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
		HiredOn:   s.HiredOn,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
