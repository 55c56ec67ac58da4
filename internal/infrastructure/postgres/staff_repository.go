package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de personal.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, first_name, last_name, role, phone, email, address, hired_on, created_at, updated_at`

// Create persiste un miembro del personal nuevo.
func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.FirstName, s.LastName, s.Role, s.Phone, s.Email, s.Address,
		s.HiredOn, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro del personal por ID. Nil si no existe.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Role, &s.Phone, &s.Email, &s.Address,
		&s.HiredOn, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// Update actualiza un miembro del personal existente.
func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	query := `
		UPDATE staff
		SET first_name = $2, last_name = $3, role = $4, phone = $5, email = $6,
		    address = $7, hired_on = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.FirstName, s.LastName, s.Role, s.Phone, s.Email, s.Address,
		s.HiredOn, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un miembro del personal por ID.
func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// List pagina el personal por apellido y nombre.
func (r *StaffRepo) List(ctx context.Context, limit, offset int) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Role, &s.Phone, &s.Email, &s.Address,
			&s.HiredOn, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
