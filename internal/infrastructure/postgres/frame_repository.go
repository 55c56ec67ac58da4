package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

var _ repository.FrameRepository = (*FrameRepo)(nil)

// FrameRepo implementación de FrameRepository sobre PostgreSQL.
type FrameRepo struct {
	q Querier
}

// NewFrameRepository construye el adaptador de monturas.
func NewFrameRepository(q Querier) *FrameRepo {
	return &FrameRepo{q: q}
}

const frameColumns = `id, brand, model, colour, material, size, purchase_price, selling_price, quantity, status, created_at, updated_at`

// Create persiste una montura nueva.
func (r *FrameRepo) Create(ctx context.Context, f *entity.Frame) error {
	query := `
		INSERT INTO frames (` + frameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Brand, f.Model, f.Colour, f.Material, f.Size,
		f.PurchasePrice, f.SellingPrice, f.Quantity, f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert frame: %w", err)
	}
	return nil
}

// GetByID obtiene una montura por ID. Nil si no existe.
func (r *FrameRepo) GetByID(ctx context.Context, id string) (*entity.Frame, error) {
	query := `SELECT ` + frameColumns + ` FROM frames WHERE id = $1`
	f, err := scanFrame(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get frame: %w", err)
	}
	return f, nil
}

// Update actualiza los datos descriptivos de una montura. La cantidad solo
// cambia vía AdjustQuantity.
func (r *FrameRepo) Update(ctx context.Context, f *entity.Frame) error {
	query := `
		UPDATE frames
		SET brand = $2, model = $3, colour = $4, material = $5, size = $6,
		    purchase_price = $7, selling_price = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Brand, f.Model, f.Colour, f.Material, f.Size,
		f.PurchasePrice, f.SellingPrice, f.Status, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update frame: %w", err)
	}
	return nil
}

// Delete elimina una montura por ID.
func (r *FrameRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM frames WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete frame: %w", err)
	}
	return nil
}

// List lista monturas por marca con paginación (marca vacía = todas).
func (r *FrameRepo) List(ctx context.Context, brand string, limit, offset int) ([]*entity.Frame, error) {
	query := `SELECT ` + frameColumns + ` FROM frames`
	args := []any{}
	if brand != "" {
		query += ` WHERE brand ILIKE $1`
		args = append(args, "%"+brand+"%")
	}
	query += fmt.Sprintf(` ORDER BY brand, model LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	defer rows.Close()

	var list []*entity.Frame
	for rows.Next() {
		f, err := scanFrame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// AdjustQuantity suma delta en una sola sentencia condicionada a no quedar en
// negativo. Distingue inexistente de stock insuficiente con una segunda lectura.
func (r *FrameRepo) AdjustQuantity(ctx context.Context, id string, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE frames SET quantity = quantity + $2, updated_at = now() WHERE id = $1 AND quantity + $2 >= 0`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust frame quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM frames WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check frame exists: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func scanFrame(row pgx.Row) (*entity.Frame, error) {
	var f entity.Frame
	err := row.Scan(
		&f.ID, &f.Brand, &f.Model, &f.Colour, &f.Material, &f.Size,
		&f.PurchasePrice, &f.SellingPrice, &f.Quantity, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
