package optical

// Niveles de stock para presentación.
const (
	LevelOutOfStock = "out_of_stock"
	LevelLow        = "low"
	LevelMedium     = "medium"
	LevelHigh       = "high"
)

// StockLevelFor clasifica el total agregado de una celda en un nivel discreto.
// Umbrales fijos: 0, 1..5, 6..20, >20. Función total sobre enteros no negativos.
func StockLevelFor(total int) string {
	switch {
	case total <= 0:
		return LevelOutOfStock
	case total <= 5:
		return LevelLow
	case total <= 20:
		return LevelMedium
	default:
		return LevelHigh
	}
}
