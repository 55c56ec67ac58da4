package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LensStock representa una línea de stock de lentes para una celda (SPH, CYL) de la grilla.
// Varias líneas pueden compartir la misma celda (combinaciones de atributos distintas,
// ej. mismo poder con coating diferente); el agregado de la celda es la suma de Quantity.
// Quantity nunca es negativa; una línea en cero se conserva salvo eliminación explícita.
type LensStock struct {
	ID        string
	Sph       decimal.Decimal // poder esférico: -6.00..+10.00, paso 0.50
	Cyl       decimal.Decimal // poder cilíndrico: 0.00..4.00, paso 0.25
	Quantity  int
	LensType  string // atributos descriptivos opcionales (vacío = sin especificar)
	Thickness string
	Colour    string
	Diameter  string
	Coating   string
	Reason    string // metadato libre del último restock/retiro
	Details   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameAttributes compara la tupla completa de atributos descriptivos (política de
// matching para restock: celda + atributos, con vacío igual a vacío).
func (l *LensStock) SameAttributes(lensType, thickness, colour, diameter, coating string) bool {
	return l.LensType == lensType &&
		l.Thickness == thickness &&
		l.Colour == colour &&
		l.Diameter == diameter &&
		l.Coating == coating
}
