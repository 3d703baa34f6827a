// Package pdf implementa la generación del reporte de reposición predictiva
// en PDF, pensado para imprimirse y revisarse en la reunión de compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockMaster + título  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock | Uso diario | Días | Reorden       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cómo se calcula la predicción                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// Por debajo de este umbral la fila se resalta en rojo.
const criticalDays = 7

// ── Generator ─────────────────────────────────────────────────────────────────

// RestockReportGenerator implementa analytics.RestockPDFGenerator usando
// Maroto v2.
type RestockReportGenerator struct{}

// NewRestockReportGenerator construye el generador.
func NewRestockReportGenerator() *RestockReportGenerator { return &RestockReportGenerator{} }

// GenerateRestockReport genera el PDF del reporte y devuelve sus bytes. Las
// filas llegan ya ordenadas por urgencia (días hasta quiebre ascendente).
func (g *RestockReportGenerator) GenerateRestockReport(
	_ context.Context,
	predictions []dto.RestockPredictionDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reposición Predictiva", true).
		WithAuthor("StockMaster", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(predictions) {
		m.AddRows(r)
	}
	if len(predictions) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(methodologyRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("StockMaster", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Reposición Predictiva", props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PREDICCIÓN DE QUIEBRE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de predicciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Stock actual", 2, align.Right),
		h("Uso diario", 2, align.Right),
		h("Días restantes", 2, align.Center),
		h("Reorden sugerido", 2, align.Right),
	)
}

// tableRows: una fila por producto, resaltando en rojo los críticos.
func tableRows(predictions []dto.RestockPredictionDTO) []core.Row {
	result := make([]core.Row, 0, len(predictions))
	for _, p := range predictions {
		rowColor := colorGray
		daysStyle := fontstyle.Normal
		if p.DaysUntilOutOfStock < criticalDays {
			rowColor = colorAlert
			daysStyle = fontstyle.Bold
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				p.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", p.CurrentStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				p.AvgDailyUsage.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatDays(p.DaysUntilOutOfStock),
				props.Text{Size: 8, Align: align.Center, Top: 1, Style: daysStyle, Color: rowColor},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d uds.", p.SuggestedReorderQty),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// emptyRow: placeholder cuando no hay productos en el catálogo.
func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Sin productos registrados.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// methodologyRows: explica cómo se calcula la predicción.
func methodologyRows() []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CÓMO SE CALCULA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(
				"El uso diario promedio se calcula sobre las unidades entregadas en los "+
					"últimos 30 días. Los días restantes son el stock actual dividido por ese "+
					"promedio (sin uso registrado se reporta 999). El reorden sugerido cubre "+
					"14 días de uso descontando el stock disponible.",
				props.Text{Size: 7, Color: colorGray, Top: 1},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDays muestra "999+" para productos sin uso registrado.
func formatDays(days int) string {
	if days >= 999 {
		return "999+"
	}
	return fmt.Sprintf("%d días", days)
}
