package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

var _ repository.EnquiryRepository = (*EnquiryRepo)(nil)

// EnquiryRepo implementación de EnquiryRepository sobre PostgreSQL.
type EnquiryRepo struct {
	q Querier
}

// NewEnquiryRepository construye el adaptador de consultas comerciales.
func NewEnquiryRepository(q Querier) *EnquiryRepo {
	return &EnquiryRepo{q: q}
}

const enquiryColumns = `id, name, phone, email, subject, message, status, created_at, updated_at`

// Create persiste una consulta nueva.
func (r *EnquiryRepo) Create(ctx context.Context, e *entity.Enquiry) error {
	query := `
		INSERT INTO enquiries (` + enquiryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Phone, e.Email, e.Subject, e.Message, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

// GetByID obtiene una consulta por ID. Nil si no existe.
func (r *EnquiryRepo) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id = $1`
	var e entity.Enquiry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Phone, &e.Email, &e.Subject, &e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enquiry: %w", err)
	}
	return &e, nil
}

// Update actualiza una consulta existente.
func (r *EnquiryRepo) Update(ctx context.Context, e *entity.Enquiry) error {
	query := `
		UPDATE enquiries
		SET name = $2, phone = $3, email = $4, subject = $5, message = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Phone, e.Email, e.Subject, e.Message, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update enquiry: %w", err)
	}
	return nil
}

// Delete elimina una consulta por ID.
func (r *EnquiryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}
	return nil
}

// List lista consultas por estado con paginación (estado vacío = todas).
func (r *EnquiryRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Enquiry
	for rows.Next() {
		var e entity.Enquiry
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Phone, &e.Email, &e.Subject, &e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
