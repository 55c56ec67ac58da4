package optical

import "github.com/mazvaris/optiapp/internal/domain/entity"

// GridIndex agrupa líneas de stock por celda (SPH, CYL) y deriva el total por celda.
// Es una proyección de solo lectura: se reconstruye cada vez que cambia el conjunto
// de entrada. Valores fuera de los ejes fijos crean su bucket igual (la grilla fija
// simplemente no los renderiza).
type GridIndex struct {
	buckets map[string][]*entity.LensStock
}

// NewGridIndex construye el índice a partir de un conjunto (ya filtrado) de líneas.
func NewGridIndex(records []*entity.LensStock) *GridIndex {
	buckets := make(map[string][]*entity.LensStock)
	for _, r := range records {
		key := CellKey(r.Sph, r.Cyl)
		buckets[key] = append(buckets[key], r)
	}
	return &GridIndex{buckets: buckets}
}

// Records devuelve las líneas de la celda. Nil si la celda está vacía.
func (ix *GridIndex) Records(key string) []*entity.LensStock {
	return ix.buckets[key]
}

// Total devuelve la suma de cantidades de la celda; 0 para bucket vacío.
func (ix *GridIndex) Total(key string) int {
	total := 0
	for _, r := range ix.buckets[key] {
		total += r.Quantity
	}
	return total
}

// Cells devuelve las claves de celda con al menos una línea (orden no garantizado).
func (ix *GridIndex) Cells() []string {
	keys := make([]string, 0, len(ix.buckets))
	for k := range ix.buckets {
		keys = append(keys, k)
	}
	return keys
}
