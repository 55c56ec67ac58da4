package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

var _ repository.LensStockRepository = (*LensStockRepo)(nil)

// LensStockRepo implementación de LensStockRepository sobre PostgreSQL (usable con pool o tx).
// Atributos descriptivos sin especificar se guardan como cadena vacía, no NULL,
// para que el match por tupla completa sea igualdad simple.
type LensStockRepo struct {
	q Querier
}

// NewLensStockRepository construye el adaptador de stock de lentes. Pasar pool o tx (Querier).
func NewLensStockRepository(q Querier) *LensStockRepo {
	return &LensStockRepo{q: q}
}

const lensColumns = `id, sph, cyl, quantity, lens_type, lens_thickness, lens_colour, lens_diameter, lens_coating, reason, details, created_at, updated_at`

// Create persiste una línea de stock nueva.
func (r *LensStockRepo) Create(ctx context.Context, l *entity.LensStock) error {
	query := `
		INSERT INTO lenses (` + lensColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.Sph, l.Cyl, l.Quantity,
		l.LensType, l.Thickness, l.Colour, l.Diameter, l.Coating,
		l.Reason, l.Details, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lens: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID. Nil si no existe.
func (r *LensStockRepo) GetByID(ctx context.Context, id string) (*entity.LensStock, error) {
	query := `SELECT ` + lensColumns + ` FROM lenses WHERE id = $1`
	l, err := scanLens(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lens: %w", err)
	}
	return l, nil
}

// List devuelve las líneas que cumplen el filtro de igualdades (vacío = todas),
// ordenadas por sph, cyl.
func (r *LensStockRepo) List(ctx context.Context, filter optical.StockFilter) ([]*entity.LensStock, error) {
	query := `SELECT ` + lensColumns + ` FROM lenses`
	var (
		conds []string
		args  []any
	)
	addCond := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	addCond("lens_type", filter.LensType)
	addCond("lens_thickness", filter.Thickness)
	addCond("lens_colour", filter.Colour)
	addCond("lens_diameter", filter.Diameter)
	addCond("lens_coating", filter.Coating)
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY sph, cyl"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.LensStock
	for rows.Next() {
		l, err := scanLens(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lens: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// FindByCellAndAttributes busca la línea con celda y tupla de atributos exactas. Nil si no existe.
func (r *LensStockRepo) FindByCellAndAttributes(ctx context.Context, sph, cyl decimal.Decimal, lensType, thickness, colour, diameter, coating string) (*entity.LensStock, error) {
	query := `
		SELECT ` + lensColumns + ` FROM lenses
		WHERE sph = $1 AND cyl = $2
		  AND lens_type = $3 AND lens_thickness = $4 AND lens_colour = $5
		  AND lens_diameter = $6 AND lens_coating = $7
		LIMIT 1`
	l, err := scanLens(r.q.QueryRow(ctx, query, sph, cyl, lensType, thickness, colour, diameter, coating))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find lens by cell: %w", err)
	}
	return l, nil
}

// UpdateQuantity fija la cantidad y los metadatos del último movimiento.
func (r *LensStockRepo) UpdateQuantity(ctx context.Context, id string, quantity int, reason, details string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE lenses SET quantity = $2, reason = $3, details = $4, updated_at = now() WHERE id = $1`,
		id, quantity, reason, details,
	)
	if err != nil {
		return fmt.Errorf("update lens quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *LensStockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM lenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lens: %w", err)
	}
	return nil
}

func scanLens(row pgx.Row) (*entity.LensStock, error) {
	var l entity.LensStock
	err := row.Scan(
		&l.ID, &l.Sph, &l.Cyl, &l.Quantity,
		&l.LensType, &l.Thickness, &l.Colour, &l.Diameter, &l.Coating,
		&l.Reason, &l.Details, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
