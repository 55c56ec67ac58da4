package optical

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mazvaris/optiapp/internal/domain"
)

// Separador de la clave de celda. No aparece en números formateados a dos decimales.
const cellKeySep = "_"

// CellKey codifica una celda (SPH, CYL) como clave de agrupación en memoria.
// Ambos valores se formatean a exactamente dos decimales: "-2.00_1.00".
// La clave es derivada, nunca se persiste.
func CellKey(sph, cyl decimal.Decimal) string {
	return sph.StringFixed(2) + cellKeySep + cyl.StringFixed(2)
}

// ParseCellKey decodifica una clave de celda en su par (SPH, CYL).
// Ley de ida y vuelta: ParseCellKey(CellKey(s, c)) == (s, c) para todo par de los ejes.
func ParseCellKey(key string) (sph, cyl decimal.Decimal, err error) {
	parts := strings.Split(key, cellKeySep)
	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("clave de celda %q: %w", key, domain.ErrInvalidInput)
	}
	sph, err = decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("clave de celda %q (sph): %w", key, domain.ErrInvalidInput)
	}
	cyl, err = decimal.NewFromString(parts[1])
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("clave de celda %q (cyl): %w", key, domain.ErrInvalidInput)
	}
	return sph, cyl, nil
}
