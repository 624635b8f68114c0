// Package pdf genera el reporte imprimible de alertas de stock pendientes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SGI-GuateMart + título │ Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total / críticas / mínimas                         │
//	│  TABLA: SKU | Producto | Tipo | Stock | Mín | Proveedor | F. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sgi-guatemart/internal/application/ports"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

var _ ports.AlertReportGenerator = (*MarotoAlertReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarning  = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// MarotoAlertReport implementa ports.AlertReportGenerator usando Maroto v2.
type MarotoAlertReport struct {
	appName string
}

// NewMarotoAlertReport construye el generador.
func NewMarotoAlertReport(appName string) *MarotoAlertReport {
	return &MarotoAlertReport{appName: nonEmpty(appName, "SGI-GuateMart")}
}

// AlertsReport genera el PDF con las alertas en el orden recibido y devuelve sus bytes.
// No incluye precios: cualquier rol autenticado puede descargarlo.
func (g *MarotoAlertReport) AlertsReport(alerts []*entity.StockAlert, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertas de stock", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(alerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay alertas pendientes.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	m.AddRows(tableDetailRows(alerts)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Las alertas se generan automáticamente al registrar movimientos que dejan "+
			"el stock en o por debajo del mínimo.", props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoAlertReport) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de alertas de stock pendientes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(alerts []*entity.StockAlert) core.Row {
	critical := 0
	for _, a := range alerts {
		if a.Type == entity.AlertTypeCritical {
			critical++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total: %d   |   Críticas: %d   |   Stock mínimo: %d",
			len(alerts), critical, len(alerts)-critical,
		), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Mínimo", 1, align.Right),
		h("Proveedor", 2, align.Left),
		h("Fecha", 1, align.Center),
	)
}

func tableDetailRows(alerts []*entity.StockAlert) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		typeLabel, typeColor := "Stock mínimo", colorWarning
		if a.Type == entity.AlertTypeCritical {
			typeLabel, typeColor = "Stock crítico", colorCritical
		}
		cell := func(s string, size int, al align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: al, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			cell(a.SKU, 2, align.Left),
			cell(a.ProductName, 3, align.Left),
			col.New(2).Add(text.New(typeLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: typeColor,
			})),
			cell(fmt.Sprintf("%d", a.CurrentStock), 1, align.Right),
			cell(fmt.Sprintf("%d", a.MinStock), 1, align.Right),
			cell(nonEmpty(a.SupplierName, "—"), 2, align.Left),
			cell(a.GeneratedAt.Format("02/01/2006"), 1, align.Center),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
