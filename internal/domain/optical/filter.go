package optical

import "github.com/mazvaris/optiapp/internal/domain/entity"

// StockFilter es una conjunción de igualdades opcionales sobre los atributos
// descriptivos. Campo vacío = sin restricción.
type StockFilter struct {
	LensType  string
	Thickness string
	Colour    string
	Diameter  string
	Coating   string
}

// IsZero indica si ningún filtro está activo.
func (f StockFilter) IsZero() bool {
	return f == StockFilter{}
}

// Apply retiene solo las líneas donde cada filtro activo coincide exactamente.
// Sin filtros activos devuelve la colección original sin cambios.
func (f StockFilter) Apply(records []*entity.LensStock) []*entity.LensStock {
	if f.IsZero() {
		return records
	}
	out := make([]*entity.LensStock, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f StockFilter) matches(r *entity.LensStock) bool {
	if f.LensType != "" && r.LensType != f.LensType {
		return false
	}
	if f.Thickness != "" && r.Thickness != f.Thickness {
		return false
	}
	if f.Colour != "" && r.Colour != f.Colour {
		return false
	}
	if f.Diameter != "" && r.Diameter != f.Diameter {
		return false
	}
	if f.Coating != "" && r.Coating != f.Coating {
		return false
	}
	return true
}
