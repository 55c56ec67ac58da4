package lens_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazvaris/optiapp/internal/application/dto"
	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/domain"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
	"github.com/mazvaris/optiapp/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (sin mocks generados)
// ──────────────────────────────────────────────────────────────────────────────

// fakeLensRepo repositorio en memoria. failOn fuerza error de almacén por celda.
type fakeLensRepo struct {
	records map[string]*entity.LensStock
	failOn  map[string]bool // clave de celda → simular error de almacén
	updates int
}

func newFakeLensRepo() *fakeLensRepo {
	return &fakeLensRepo{records: make(map[string]*entity.LensStock), failOn: make(map[string]bool)}
}

func (f *fakeLensRepo) cellOf(r *entity.LensStock) string {
	return optical.CellKey(r.Sph, r.Cyl)
}

func (f *fakeLensRepo) Create(_ context.Context, l *entity.LensStock) error {
	if f.failOn[f.cellOf(l)] {
		return errors.New("fallo simulado del almacén")
	}
	cp := *l
	f.records[l.ID] = &cp
	return nil
}

func (f *fakeLensRepo) GetByID(_ context.Context, id string) (*entity.LensStock, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeLensRepo) List(_ context.Context, filter optical.StockFilter) ([]*entity.LensStock, error) {
	all := make([]*entity.LensStock, 0, len(f.records))
	for _, r := range f.records {
		cp := *r
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return filter.Apply(all), nil
}

func (f *fakeLensRepo) FindByCellAndAttributes(_ context.Context, sph, cyl decimal.Decimal, lensType, thickness, colour, diameter, coating string) (*entity.LensStock, error) {
	for _, r := range f.records {
		if r.Sph.Equal(sph) && r.Cyl.Equal(cyl) && r.SameAttributes(lensType, thickness, colour, diameter, coating) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLensRepo) UpdateQuantity(_ context.Context, id string, quantity int, reason, details string) error {
	r, ok := f.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	if f.failOn[f.cellOf(r)] {
		return errors.New("fallo simulado del almacén")
	}
	r.Quantity = quantity
	r.Reason = reason
	r.Details = details
	f.updates++
	return nil
}

func (f *fakeLensRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeLensRepo) add(sph, cyl string, qty int, coating string) *entity.LensStock {
	r := &entity.LensStock{
		ID:       uuid.New().String(),
		Sph:      mustDec(sph),
		Cyl:      mustDec(cyl),
		Quantity: qty,
		Coating:  coating,
	}
	f.records[r.ID] = r
	return r
}

// fakeTxRunner ejecuta el callback directamente con el repo (sin tx real).
type fakeTxRunner struct{ repo *fakeLensRepo }

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.LensStockRepository) error) error {
	return fn(f.repo)
}

// fakeCache registra invalidaciones; nunca acierta.
type fakeCache struct{ invalidations int }

func (f *fakeCache) GetWorkingSet(context.Context) ([]*entity.LensStock, bool) { return nil, false }
func (f *fakeCache) SetWorkingSet(context.Context, []*entity.LensStock)        {}
func (f *fakeCache) Invalidate(context.Context)                                { f.invalidations++ }

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Restock (add-stock)
// ──────────────────────────────────────────────────────────────────────────────

// Fin a fin: primera entrada crea una línea; la segunda con atributos idénticos
// acumula sobre la misma línea en vez de crear otra.
func TestAddStock_CreaYLuegoAcumulaSobreLaMismaLinea(t *testing.T) {
	repo := newFakeLensRepo()
	cache := &fakeCache{}
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, cache, testLogger())

	attrs := dto.LensAttributes{LensType: "CR39", Coating: "AR"}

	out, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells:      map[string]int{"-2.00_1.00": 10},
		Attributes: attrs,
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchSuccess, out.Status)
	require.Len(t, repo.records, 1)

	out, err = uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells:      map[string]int{"-2.00_1.00": 5},
		Attributes: attrs,
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchSuccess, out.Status)

	require.Len(t, repo.records, 1, "atributos idénticos: no debe crear segunda línea")
	for _, r := range repo.records {
		assert.Equal(t, 15, r.Quantity)
	}
	assert.Equal(t, 2, cache.invalidations)
}

// Mismo poder con coating distinto debe crear una línea separada (matching por
// tupla completa de atributos, no solo por celda).
func TestAddStock_CoatingDistintoCreaLineaSeparada(t *testing.T) {
	repo := newFakeLensRepo()
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, &fakeCache{}, testLogger())

	_, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells:      map[string]int{"-2.00_1.00": 10},
		Attributes: dto.LensAttributes{Coating: "AR"},
	})
	require.NoError(t, err)

	_, err = uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells:      map[string]int{"-2.00_1.00": 5},
		Attributes: dto.LensAttributes{Coating: "UV"},
	})
	require.NoError(t, err)

	assert.Len(t, repo.records, 2)
}

func TestAddStock_SinCeldasAccionables_EsNoOp(t *testing.T) {
	repo := newFakeLensRepo()
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, &fakeCache{}, testLogger())

	_, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells: map[string]int{"-2.00_1.00": 0, "0.00_0.00": -3},
	})
	assert.ErrorIs(t, err, lens.ErrNoActionableCells)
	assert.Empty(t, repo.records, "no debe tocar el almacén")
}

// Una celda con clave malformada falla con VALIDATION; el resto del lote continúa.
func TestAddStock_ClaveInvalidaNoAbortaElLote(t *testing.T) {
	repo := newFakeLensRepo()
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, &fakeCache{}, testLogger())

	out, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells: map[string]int{"no-es-clave": 4, "0.00_0.00": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.BatchPartial, out.Status)
	assert.Equal(t, 1, out.Succeeded)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "no-es-clave", out.Failures[0].Cell)
	assert.Equal(t, "VALIDATION", out.Failures[0].Code)
}

// Error de almacén en una celda: se cuenta como fallo y el lote sigue.
func TestAddStock_ErrorDeAlmacenEsParcial(t *testing.T) {
	repo := newFakeLensRepo()
	repo.failOn["0.00_0.00"] = true
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, &fakeCache{}, testLogger())

	out, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells: map[string]int{"0.00_0.00": 2, "1.00_0.25": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.BatchPartial, out.Status)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "STORE", out.Failures[0].Code)
}

func TestAddStock_TodasLasCeldasFallan_EsFailure(t *testing.T) {
	repo := newFakeLensRepo()
	repo.failOn["0.00_0.00"] = true
	uc := lens.NewRestockUseCase(&fakeTxRunner{repo: repo}, &fakeCache{}, testLogger())

	out, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		Cells: map[string]int{"0.00_0.00": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchFailure, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Retiro (remove-stock)
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad del spec de dominio: con líneas de 2 y 5, retirar 4 deja 0 y 3
// (drena primero la de menor cantidad).
func TestRemoveStock_DrenaPrimeroLaLineaMasChica(t *testing.T) {
	repo := newFakeLensRepo()
	small := repo.add("-2.00", "1.00", 2, "AR")
	big := repo.add("-2.00", "1.00", 5, "UV")
	uc := lens.NewRemovalUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.RemoveStock(context.Background(), dto.RemoveStockRequest{
		Cells: map[string]int{"-2.00_1.00": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchSuccess, out.Status)

	assert.Equal(t, 0, repo.records[small.ID].Quantity, "la línea de 2 se drena a 0 primero")
	assert.Equal(t, 3, repo.records[big.ID].Quantity, "la de 5 queda en 3")
	_, exists := repo.records[small.ID]
	assert.True(t, exists, "una línea en cero se conserva, no se borra")
}

func TestRemoveStock_ExcesoRechazadoSinMutarNada(t *testing.T) {
	repo := newFakeLensRepo()
	a := repo.add("-2.00", "1.00", 2, "AR")
	b := repo.add("-2.00", "1.00", 5, "UV")
	uc := lens.NewRemovalUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.RemoveStock(context.Background(), dto.RemoveStockRequest{
		Cells: map[string]int{"-2.00_1.00": 8},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.BatchFailure, out.Status)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Failures[0].Code)
	assert.Contains(t, out.Failures[0].Message, "faltan 1")

	assert.Equal(t, 2, repo.records[a.ID].Quantity, "ninguna línea mutada")
	assert.Equal(t, 5, repo.records[b.ID].Quantity)
	assert.Zero(t, repo.updates)
}

func TestRemoveStock_CeldaSinLineas_NotFound(t *testing.T) {
	repo := newFakeLensRepo()
	uc := lens.NewRemovalUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.RemoveStock(context.Background(), dto.RemoveStockRequest{
		Cells: map[string]int{"3.00_0.75": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchFailure, out.Status)
	assert.Equal(t, "NOT_FOUND", out.Failures[0].Code)
}

// Una celda rechazada no impide procesar las demás.
func TestRemoveStock_RechazoPorCeldaNoAbortaElLote(t *testing.T) {
	repo := newFakeLensRepo()
	repo.add("0.00", "0.00", 10, "")
	uc := lens.NewRemovalUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.RemoveStock(context.Background(), dto.RemoveStockRequest{
		Cells: map[string]int{
			"0.00_0.00": 4,  // ok
			"5.00_2.00": 99, // sin líneas
		},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.BatchPartial, out.Status)
	assert.Equal(t, 1, out.Succeeded)
	assert.Equal(t, 1, out.Failed)
}

func TestRemoveStock_SinCeldasAccionables_EsNoOp(t *testing.T) {
	repo := newFakeLensRepo()
	uc := lens.NewRemovalUseCase(repo, &fakeCache{}, testLogger())

	_, err := uc.RemoveStock(context.Background(), dto.RemoveStockRequest{Cells: map[string]int{}})
	assert.ErrorIs(t, err, lens.ErrNoActionableCells)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango masivo (working set pendiente)
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyBulkRange_ParDuplicaYDevuelvePendiente(t *testing.T) {
	end := mustDec("0.50")
	out, err := lens.ApplyBulkRange(context.Background(), dto.BulkRangeRequest{
		StartSph: mustDec("0.00"),
		StartCyl: mustDec("0.00"), EndCyl: &end,
		Quantity: 3, Unit: optical.UnitPair,
		Pending: map[string]int{"9.00_3.00": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.CellsTouched)
	assert.Equal(t, 6, out.Pending["0.00_0.00"])
	assert.Equal(t, 6, out.Pending["0.00_0.25"])
	assert.Equal(t, 6, out.Pending["0.00_0.50"])
	assert.Equal(t, 1, out.Pending["9.00_3.00"], "celdas fuera del rango quedan intactas")
}

func TestApplyBulkRange_CantidadNoPositiva_Invalida(t *testing.T) {
	_, err := lens.ApplyBulkRange(context.Background(), dto.BulkRangeRequest{
		StartSph: mustDec("0.00"), StartCyl: mustDec("0.00"),
		Quantity: 0, Unit: optical.UnitSingle,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyBulkRange_UnidadDesconocida_Invalida(t *testing.T) {
	_, err := lens.ApplyBulkRange(context.Background(), dto.BulkRangeRequest{
		StartSph: mustDec("0.00"), StartCyl: mustDec("0.00"),
		Quantity: 1, Unit: "dozen",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección de grilla
// ──────────────────────────────────────────────────────────────────────────────

func TestGetGrid_TotalesYNiveles(t *testing.T) {
	repo := newFakeLensRepo()
	repo.add("-2.00", "1.00", 3, "AR")
	repo.add("-2.00", "1.00", 1, "UV")
	repo.add("0.00", "0.00", 25, "")
	uc := lens.NewGridUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.GetGrid(context.Background(), optical.StockFilter{})
	require.NoError(t, err)

	assert.Len(t, out.SphAxis, optical.SphereSteps)
	assert.Len(t, out.CylAxis, optical.CylinderSteps)
	assert.Equal(t, dto.GridCellResponse{Total: 4, Level: optical.LevelLow}, out.Cells["-2.00_1.00"])
	assert.Equal(t, dto.GridCellResponse{Total: 25, Level: optical.LevelHigh}, out.Cells["0.00_0.00"])
}

func TestGetGrid_FiltroPorCoating(t *testing.T) {
	repo := newFakeLensRepo()
	repo.add("-2.00", "1.00", 3, "AR")
	repo.add("-2.00", "1.00", 1, "UV")
	uc := lens.NewGridUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.GetGrid(context.Background(), optical.StockFilter{Coating: "AR"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Cells["-2.00_1.00"].Total)
}

func TestGetCell_DetalleConLineas(t *testing.T) {
	repo := newFakeLensRepo()
	repo.add("-2.00", "1.00", 3, "AR")
	repo.add("-2.00", "1.00", 4, "UV")
	uc := lens.NewGridUseCase(repo, &fakeCache{}, testLogger())

	out, err := uc.GetCell(context.Background(), "-2.00_1.00")
	require.NoError(t, err)
	assert.Equal(t, 7, out.Total)
	assert.Equal(t, optical.LevelMedium, out.Level)
	assert.Len(t, out.Records, 2)
}

func TestGetCell_CeldaVaciaEsDetalleVacio(t *testing.T) {
	uc := lens.NewGridUseCase(newFakeLensRepo(), &fakeCache{}, testLogger())

	out, err := uc.GetCell(context.Background(), "1.00_0.25")
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Equal(t, optical.LevelOutOfStock, out.Level)
	assert.Empty(t, out.Records)
}

func TestLowStockCells_SoloLowYOut(t *testing.T) {
	repo := newFakeLensRepo()
	repo.add("-2.00", "1.00", 2, "")  // low
	repo.add("0.00", "0.00", 0, "")   // out_of_stock
	repo.add("1.00", "0.25", 15, "")  // medium: fuera del digest
	uc := lens.NewGridUseCase(repo, &fakeCache{}, testLogger())

	low, err := uc.LowStockCells(context.Background())
	require.NoError(t, err)
	assert.Len(t, low, 2)
	assert.Equal(t, optical.LevelLow, low["-2.00_1.00"].Level)
	assert.Equal(t, optical.LevelOutOfStock, low["0.00_0.00"].Level)
}
