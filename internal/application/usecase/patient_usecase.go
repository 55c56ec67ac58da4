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

// PatientUseCase casos de uso CRUD para pacientes.
type PatientUseCase struct {
	repo repository.PatientRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(repo repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// Create registra un paciente nuevo.
func (uc *PatientUseCase) Create(ctx context.Context, in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:         uuid.New().String(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		DOB:        in.DOB,
		Sex:        in.Sex,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		Occupation: in.Occupation,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID obtiene un paciente por ID. Nil si no existe.
func (uc *PatientUseCase) GetByID(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	return toPatientResponse(patient), nil
}

// Update actualiza campos presentes (nil = sin cambio).
func (uc *PatientUseCase) Update(ctx context.Context, id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		patient.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		patient.LastName = *in.LastName
	}
	if in.DOB != nil {
		patient.DOB = in.DOB
	}
	if in.Sex != nil {
		patient.Sex = *in.Sex
	}
	if in.Phone != nil {
		patient.Phone = *in.Phone
	}
	if in.Email != nil {
		patient.Email = *in.Email
	}
	if in.Address != nil {
		patient.Address = *in.Address
	}
	if in.Occupation != nil {
		patient.Occupation = *in.Occupation
	}
	if in.Notes != nil {
		patient.Notes = *in.Notes
	}
	patient.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// List lista pacientes con búsqueda y paginación.
func (uc *PatientUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.PatientListResponse, error) {
	list, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.PatientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un paciente por ID.
func (uc *PatientUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		DOB:        p.DOB,
		Sex:        p.Sex,
		Phone:      p.Phone,
		Email:      p.Email,
		Address:    p.Address,
		Occupation: p.Occupation,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
