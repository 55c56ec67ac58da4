package repository

import (
	"context"

	"github.com/mazvaris/optiapp/internal/domain/entity"
)

// EnquiryRepository define el puerto de persistencia para consultas comerciales.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	GetByID(ctx context.Context, id string) (*entity.Enquiry, error)
	Update(ctx context.Context, enquiry *entity.Enquiry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Enquiry, error)
}
