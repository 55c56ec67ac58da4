package lens

import (
	"context"
	"sort"
	"time"

	"github.com/mazvaris/optiapp/internal/domain/optical"
	"github.com/mazvaris/optiapp/internal/domain/repository"
)

// StockReportCell fila del reporte: una celda con stock registrado.
type StockReportCell struct {
	Cell  string
	Total int
	Level string
}

// StockReport datos del reporte imprimible de stock de lentes.
type StockReport struct {
	GeneratedAt   time.Time
	TotalUnits    int
	TotalLines    int
	CountsByLevel map[string]int
	Cells         []StockReportCell // orden ascendente por clave de celda
}

// ReportUseCase arma el reporte imprimible de stock y delega el PDF al generador.
type ReportUseCase struct {
	lensRepo  repository.LensStockRepository
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(lensRepo repository.LensStockRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{lensRepo: lensRepo, generator: generator}
}

// BuildReport proyecta el estado actual de la grilla en datos de reporte.
func (uc *ReportUseCase) BuildReport(ctx context.Context) (*StockReport, error) {
	records, err := uc.lensRepo.List(ctx, optical.StockFilter{})
	if err != nil {
		return nil, err
	}
	ix := optical.NewGridIndex(records)

	report := &StockReport{
		GeneratedAt:   time.Now(),
		TotalLines:    len(records),
		CountsByLevel: make(map[string]int),
	}
	for _, key := range ix.Cells() {
		total := ix.Total(key)
		level := optical.StockLevelFor(total)
		report.TotalUnits += total
		report.CountsByLevel[level]++
		report.Cells = append(report.Cells, StockReportCell{Cell: key, Total: total, Level: level})
	}
	sort.Slice(report.Cells, func(i, j int) bool { return report.Cells[i].Cell < report.Cells[j].Cell })
	return report, nil
}

// GeneratePDF arma el reporte y lo renderiza como PDF.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	report, err := uc.BuildReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, report)
}
