// Package pdf implementa la generación del reporte imprimible de stock de lentes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: unidades totales / líneas / conteo por nivel       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Celda (SPH_CYL) | Unidades | Nivel                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/domain/optical"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ lens.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa lens.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, report *lens.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock de Lentes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableCellRows(report.Cells) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(report *lens.StockReport) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK DE LENTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Grilla esfera/cilindro con existencias registradas", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales y conteo de celdas por nivel.
func summaryRow(report *lens.StockReport) core.Row {
	stat := func(label, value string) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 5}),
		}
	}
	return row.New(14).Add(
		col.New(3).Add(stat("UNIDADES TOTALES", strconv.Itoa(report.TotalUnits))...),
		col.New(3).Add(stat("LÍNEAS DE STOCK", strconv.Itoa(report.TotalLines))...),
		col.New(3).Add(stat("CELDAS EN NIVEL BAJO", strconv.Itoa(report.CountsByLevel[optical.LevelLow]))...),
		col.New(3).Add(stat("CELDAS AGOTADAS", strconv.Itoa(report.CountsByLevel[optical.LevelOutOfStock]))...),
	)
}

// tableHeaderRow: cabecera de la tabla de celdas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Celda (SPH_CYL)", 5, align.Left),
		h("Unidades", 3, align.Right),
		h("Nivel", 4, align.Left),
	)
}

// tableCellRows: una fila por celda con stock registrado.
func tableCellRows(cells []lens.StockReportCell) []core.Row {
	result := make([]core.Row, 0, len(cells))
	for _, c := range cells {
		levelColor := colorGray
		if c.Level == optical.LevelLow || c.Level == optical.LevelOutOfStock {
			levelColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(
				c.Cell,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				strconv.Itoa(c.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				levelLabel(c.Level),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: levelColor},
			)),
		))
	}
	return result
}

// levelLabel traduce el nivel al texto del reporte.
func levelLabel(level string) string {
	switch level {
	case optical.LevelOutOfStock:
		return "AGOTADO"
	case optical.LevelLow:
		return "Bajo"
	case optical.LevelMedium:
		return "Medio"
	case optical.LevelHigh:
		return "Alto"
	default:
		return level
	}
}
