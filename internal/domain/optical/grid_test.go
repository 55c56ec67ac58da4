package optical_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Ejes
// ──────────────────────────────────────────────────────────────────────────────

func TestSphereAxis_RangoYPaso(t *testing.T) {
	axis := optical.SphereAxis()
	require.Len(t, axis, optical.SphereSteps)

	assert.True(t, axis[0].Equal(dec("-6.00")), "primer valor debe ser -6.00")
	assert.True(t, axis[len(axis)-1].Equal(dec("10.00")), "último valor debe ser 10.00")
	for i := 1; i < len(axis); i++ {
		assert.True(t, axis[i].Sub(axis[i-1]).Equal(dec("0.50")),
			"paso del eje SPH debe ser 0.50")
	}
}

func TestCylinderAxis_RangoYPaso(t *testing.T) {
	axis := optical.CylinderAxis()
	require.Len(t, axis, optical.CylinderSteps)

	assert.True(t, axis[0].Equal(dec("0.00")))
	assert.True(t, axis[len(axis)-1].Equal(dec("4.00")))
	for i := 1; i < len(axis); i++ {
		assert.True(t, axis[i].Sub(axis[i-1]).Equal(dec("0.25")))
	}
}

func TestAxis_DevuelveCopia(t *testing.T) {
	a := optical.SphereAxis()
	a[0] = dec("99.00")
	assert.True(t, optical.SphereAxis()[0].Equal(dec("-6.00")),
		"mutar el slice devuelto no debe afectar llamadas posteriores")
}

// ──────────────────────────────────────────────────────────────────────────────
// Codec de claves de celda
// ──────────────────────────────────────────────────────────────────────────────

// Ley de ida y vuelta sobre el producto cartesiano completo de los ejes.
func TestCellKey_RoundTripSobreEjesCompletos(t *testing.T) {
	for _, sph := range optical.SphereAxis() {
		for _, cyl := range optical.CylinderAxis() {
			key := optical.CellKey(sph, cyl)
			gotSph, gotCyl, err := optical.ParseCellKey(key)
			require.NoError(t, err, "clave %q debe decodificar", key)
			assert.True(t, gotSph.Equal(sph), "sph de %q", key)
			assert.True(t, gotCyl.Equal(cyl), "cyl de %q", key)
		}
	}
}

func TestCellKey_Formato(t *testing.T) {
	assert.Equal(t, "-2.00_1.00", optical.CellKey(dec("-2"), dec("1")))
	assert.Equal(t, "10.00_0.25", optical.CellKey(dec("10.00"), dec("0.25")))
}

func TestParseCellKey_ClavesInvalidas(t *testing.T) {
	casos := []string{"", "1.00", "1.00_2.00_3.00", "abc_1.00", "1.00_xyz"}
	for _, key := range casos {
		_, _, err := optical.ParseCellKey(key)
		assert.Error(t, err, "clave %q debe ser rechazada", key)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Índice de inventario
// ──────────────────────────────────────────────────────────────────────────────

func lens(sph, cyl string, qty int) *entity.LensStock {
	return &entity.LensStock{Sph: dec(sph), Cyl: dec(cyl), Quantity: qty}
}

func TestGridIndex_TotalEsSumaDeCantidades(t *testing.T) {
	ix := optical.NewGridIndex([]*entity.LensStock{
		lens("-2.00", "1.00", 3),
		lens("-2.00", "1.00", 4),
		lens("0.00", "0.00", 7),
	})

	assert.Equal(t, 7, ix.Total(optical.CellKey(dec("-2.00"), dec("1.00"))))
	assert.Equal(t, 7, ix.Total(optical.CellKey(dec("0.00"), dec("0.00"))))
	assert.Len(t, ix.Records(optical.CellKey(dec("-2.00"), dec("1.00"))), 2)
}

func TestGridIndex_CeldaVaciaTotalCero(t *testing.T) {
	ix := optical.NewGridIndex(nil)
	assert.Equal(t, 0, ix.Total("1.00_0.25"))
	assert.Nil(t, ix.Records("1.00_0.25"))
}

// Valores fuera de los ejes fijos deben indexarse sin fallar.
func TestGridIndex_ValoresFueraDeEje(t *testing.T) {
	ix := optical.NewGridIndex([]*entity.LensStock{lens("-6.30", "0.10", 2)})
	assert.Equal(t, 2, ix.Total(optical.CellKey(dec("-6.30"), dec("0.10"))))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango masivo
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkRange_UnidadParDuplica(t *testing.T) {
	r := optical.BulkRange{
		StartSph: dec("0.00"), StartCyl: dec("0.00"),
		Quantity: 3, Unit: optical.UnitPair,
	}
	pending := map[string]int{}
	touched := r.Apply(pending)

	assert.Equal(t, 1, touched, "sin end el rango es una sola celda")
	assert.Equal(t, 6, pending["0.00_0.00"], "pair: 3 pares = 6 unidades")
}

func TestBulkRange_UnidadSingle(t *testing.T) {
	r := optical.BulkRange{
		StartSph: dec("0.00"), StartCyl: dec("0.00"),
		Quantity: 3, Unit: optical.UnitSingle,
	}
	pending := map[string]int{}
	r.Apply(pending)
	assert.Equal(t, 3, pending["0.00_0.00"])
}

func TestBulkRange_RectanguloInclusivo(t *testing.T) {
	r := optical.BulkRange{
		StartSph: dec("-1.00"), EndSph: ptr(dec("0.00")),
		StartCyl: dec("0.00"), EndCyl: ptr(dec("0.50")),
		Quantity: 1, Unit: optical.UnitSingle,
	}
	pending := map[string]int{}
	touched := r.Apply(pending)

	// SPH: -1.00, -0.50, 0.00 (3) x CYL: 0.00, 0.25, 0.50 (3) = 9 celdas
	assert.Equal(t, 9, touched)
	assert.Equal(t, 1, pending["-1.00_0.00"])
	assert.Equal(t, 1, pending["0.00_0.50"])
}

func TestBulkRange_StartMayorQueEnd_NoTocaCeldas(t *testing.T) {
	r := optical.BulkRange{
		StartSph: dec("1.00"), EndSph: ptr(dec("-1.00")),
		StartCyl: dec("0.00"),
		Quantity: 5, Unit: optical.UnitSingle,
	}
	pending := map[string]int{}
	assert.Equal(t, 0, r.Apply(pending))
	assert.Empty(t, pending)
}

func TestBulkRange_SobrescribeValorPendiente(t *testing.T) {
	pending := map[string]int{"0.00_0.00": 99}
	r := optical.BulkRange{
		StartSph: dec("0.00"), StartCyl: dec("0.00"),
		Quantity: 2, Unit: optical.UnitSingle,
	}
	r.Apply(pending)
	assert.Equal(t, 2, pending["0.00_0.00"], "Apply sobrescribe, no acumula")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestStockFilter_VacioDevuelveEntradaSinCambios(t *testing.T) {
	records := []*entity.LensStock{lens("0.00", "0.00", 1), lens("1.00", "0.25", 2)}
	out := optical.StockFilter{}.Apply(records)
	assert.Equal(t, records, out)
}

func TestStockFilter_IgualdadPorAtributo(t *testing.T) {
	cr39 := lens("0.00", "0.00", 1)
	cr39.LensType = "CR39"
	poly := lens("1.00", "0.25", 2)
	poly.LensType = "Polycarbonate"

	out := optical.StockFilter{LensType: "CR39"}.Apply([]*entity.LensStock{cr39, poly})
	require.Len(t, out, 1)
	assert.Same(t, cr39, out[0])
}

func TestStockFilter_ConjuncionDeFiltros(t *testing.T) {
	a := lens("0.00", "0.00", 1)
	a.LensType, a.Coating = "CR39", "AR"
	b := lens("0.00", "0.00", 1)
	b.LensType, b.Coating = "CR39", "UV"

	out := optical.StockFilter{LensType: "CR39", Coating: "UV"}.Apply([]*entity.LensStock{a, b})
	require.Len(t, out, 1)
	assert.Same(t, b, out[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Nivel de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLevelFor_Umbrales(t *testing.T) {
	assert.Equal(t, optical.LevelOutOfStock, optical.StockLevelFor(0))
	assert.Equal(t, optical.LevelLow, optical.StockLevelFor(1))
	assert.Equal(t, optical.LevelLow, optical.StockLevelFor(5))
	assert.Equal(t, optical.LevelMedium, optical.StockLevelFor(6))
	assert.Equal(t, optical.LevelMedium, optical.StockLevelFor(20))
	assert.Equal(t, optical.LevelHigh, optical.StockLevelFor(21))
}
