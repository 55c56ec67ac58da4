package optical

import "github.com/shopspring/decimal"

// Unidades de un rango masivo.
const (
	UnitSingle = "single" // cantidad tal cual por celda
	UnitPair   = "pair"   // cantidad x2 por celda (pares de lentes)
)

// BulkRange describe un sub-rango rectangular de la grilla a poblar en una acción.
// EndSph/EndCyl nil equivalen al start correspondiente (aplicación de una sola
// fila/columna). Se construye por acción del usuario y se descarta tras aplicarse.
type BulkRange struct {
	StartSph decimal.Decimal
	EndSph   *decimal.Decimal
	StartCyl decimal.Decimal
	EndCyl   *decimal.Decimal
	Quantity int
	Unit     string // single | pair
}

// PerCellQuantity devuelve la cantidad efectiva por celda según la unidad.
func (r BulkRange) PerCellQuantity() int {
	if r.Unit == UnitPair {
		return r.Quantity * 2
	}
	return r.Quantity
}

// Apply escribe la cantidad efectiva en cada celda del producto cartesiano de los
// ejes dentro del rango (inclusive en ambos extremos), SOBRESCRIBIENDO cualquier
// valor pendiente previo. Si start > end en algún eje el rango no toca celdas
// (resultado vacío, no error). Devuelve cuántas celdas fueron escritas.
func (r BulkRange) Apply(pending map[string]int) int {
	endSph := r.StartSph
	if r.EndSph != nil {
		endSph = *r.EndSph
	}
	endCyl := r.StartCyl
	if r.EndCyl != nil {
		endCyl = *r.EndCyl
	}

	qty := r.PerCellQuantity()
	touched := 0
	for _, sph := range SphereAxis() {
		if sph.LessThan(r.StartSph) || sph.GreaterThan(endSph) {
			continue
		}
		for _, cyl := range CylinderAxis() {
			if cyl.LessThan(r.StartCyl) || cyl.GreaterThan(endCyl) {
				continue
			}
			pending[CellKey(sph, cyl)] = qty
			touched++
		}
	}
	return touched
}
