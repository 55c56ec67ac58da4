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

// EnquiryUseCase casos de uso CRUD para consultas comerciales.
type EnquiryUseCase struct {
	repo repository.EnquiryRepository
}

// NewEnquiryUseCase construye el caso de uso.
func NewEnquiryUseCase(repo repository.EnquiryRepository) *EnquiryUseCase {
	return &EnquiryUseCase{repo: repo}
}

// Create registra una consulta entrante (abre en estado open).
func (uc *EnquiryUseCase) Create(ctx context.Context, in dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if in.Name == "" || in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	enquiry := &entity.Enquiry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    entity.EnquiryOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, enquiry); err != nil {
		return nil, err
	}
	return toEnquiryResponse(enquiry), nil
}

// GetByID obtiene una consulta por ID. Nil si no existe.
func (uc *EnquiryUseCase) GetByID(ctx context.Context, id string) (*dto.EnquiryResponse, error) {
	enquiry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, nil
	}
	return toEnquiryResponse(enquiry), nil
}

// Update actualiza campos presentes; estado solo open|closed.
func (uc *EnquiryUseCase) Update(ctx context.Context, id string, in dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error) {
	enquiry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, nil
	}
	if in.Status != nil {
		if *in.Status != entity.EnquiryOpen && *in.Status != entity.EnquiryClosed {
			return nil, domain.ErrInvalidInput
		}
		enquiry.Status = *in.Status
	}
	if in.Subject != nil {
		enquiry.Subject = *in.Subject
	}
	if in.Message != nil {
		enquiry.Message = *in.Message
	}
	enquiry.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, enquiry); err != nil {
		return nil, err
	}
	return toEnquiryResponse(enquiry), nil
}

// List lista consultas por estado con paginación.
func (uc *EnquiryUseCase) List(ctx context.Context, status string, limit, offset int) (*dto.EnquiryListResponse, error) {
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EnquiryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEnquiryResponse(e))
	}
	return &dto.EnquiryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una consulta por ID.
func (uc *EnquiryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toEnquiryResponse(e *entity.Enquiry) *dto.EnquiryResponse {
	if e == nil {
		return nil
	}
	return &dto.EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		Subject:   e.Subject,
		Message:   e.Message,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
