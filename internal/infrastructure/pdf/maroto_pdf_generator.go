// Package pdf genera el PDF de una simulación de crédito: resumen de tasas y costos
// y la tabla de amortización completa con su fila de totales.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + modalidad      │  Fecha + ID simulación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITUD: monto / plazo / periodicidad / ubicación         │
//	│  TASAS Y COSTOS: tipo, M.V., E.A., FNG, MiPyme, seguro, ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Cuota fija | Capital | Interés | ... | Saldo    │
//	│  TOTALES                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de simulación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa simulation.SchedulePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author  string
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los números se formatean en es-CO.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		author:  author,
		printer: message.NewPrinter(language.MustParse("es-CO")),
	}
}

// GenerateSchedulePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSchedulePDF(ctx context.Context, sim *dto.SimulationResponse) ([]byte, error) {
	if sim == nil {
		return nil, fmt.Errorf("pdf: simulación vacía")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Simulación de crédito", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sim))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.requestRow(sim))
	m.AddRows(g.summaryRows(sim)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.installmentRows(sim.Installments)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(sim.Totals))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y modalidad (izq), fecha e ID (der).
func (g *MarotoPDFGenerator) headerRow(sim *dto.SimulationResponse) core.Row {
	fecha := sim.CreatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("SIMULACIÓN DE CRÉDITO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Modalidad: "+sim.Request.Modality+"   |   Tipo: "+sim.Summary.CreditType, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("ID: "+sim.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Parametría: "+nonEmpty(sim.ParametriaVersion, "-"), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// requestRow: datos de la solicitud.
func (g *MarotoPDFGenerator) requestRow(sim *dto.SimulationResponse) core.Row {
	r := sim.Request
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SOLICITUD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Monto: $%s   |   Plazo: %d cuotas %s (%d meses)   |   Ubicación: %s, %s (%s)",
				g.money(decimal.NewFromFloat(r.Amount)),
				r.TermCount, r.PaymentFrequency, sim.Summary.TermMonths,
				r.Municipality, r.Region, sim.Summary.Typology,
			), props.Text{Size: 8, Top: 6}),
		),
	)
}

// summaryRows: panel de tasas y costos resueltos.
func (g *MarotoPDFGenerator) summaryRows(sim *dto.SimulationResponse) []core.Row {
	s := sim.Summary
	item := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		)
	}

	fng := "No aplica"
	if s.GuaranteeProduct != "" {
		fng = fmt.Sprintf("%s %s (%s)", s.GuaranteeProduct, g.percent(s.GuaranteeFee), nonEmpty(s.GuaranteeTiming, "-"))
	}
	mipyme := "No aplica"
	if s.MipymeCommission > 0 {
		mipyme = fmt.Sprintf("%s (%s)", g.percent(s.MipymeCommission), s.MipymeTiming)
	}

	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("TASAS Y COSTOS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
		row.New(11).Add(
			item("Tasa M.V.", g.percent(s.MonthlyRate)),
			item("Tasa E.A.", g.percent(s.AnnualEffectiveRate)),
			item("Tasa del periodo", g.percent(s.PeriodicRate)),
			item("Cuota fija", "$"+g.money(s.LevelPayment)),
		),
		row.New(11).Add(
			item("Comisión FNG", fng),
			item("Comisión Ley MiPyme", mipyme),
			item("Seguro de vida (por mil)", g.printer.Sprintf("%.2f", s.LifeInsurancePerThousand)),
			item("Consulta centrales", fmt.Sprintf("$%s (%s SMLV)", g.money(s.BureauCost), g.printer.Sprintf("%.4f", s.BureauCostSMLV))),
		),
	}
}

var tableColumns = []struct {
	label string
	size  int
}{
	{"N°", 1},
	{"Cuota fija", 1},
	{"Capital", 1},
	{"Interés", 1},
	{"FNG", 1},
	{"MiPyme", 1},
	{"Seguro", 1},
	{"Centrales", 1},
	{"Cuota total", 2},
	{"Saldo", 2},
}

// tableHeaderRow: cabecera de la tabla de amortización con fondo azul.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableColumns))
	for i, c := range tableColumns {
		a := align.Right
		if i == 0 {
			a = align.Center
		}
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Right: 1,
		})))
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// installmentRows: una fila por cuota, con franjas alternas.
func (g *MarotoPDFGenerator) installmentRows(installments []dto.InstallmentResponse) []core.Row {
	rows := make([]core.Row, 0, len(installments))
	for i, c := range installments {
		r := row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", c.Period), props.Text{Size: 7.5, Align: align.Center, Top: 1})),
			g.moneyCol(1, c.LevelPayment, false),
			g.moneyCol(1, c.Principal, false),
			g.moneyCol(1, c.Interest, false),
			g.moneyCol(1, c.GuaranteeFee, false),
			g.moneyCol(1, c.MipymeCharge, false),
			g.moneyCol(1, c.LifeInsurance, false),
			g.moneyCol(1, c.BureauCharge, false),
			g.moneyCol(2, c.Total, true),
			g.moneyCol(2, c.RemainingBalance, false),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

// totalsRow: suma de cada columna.
func (g *MarotoPDFGenerator) totalsRow(t dto.TotalsResponse) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("TOTALES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1.5, Left: 2,
		})),
		g.moneyCol(1, t.Principal, true),
		g.moneyCol(1, t.Interest, true),
		g.moneyCol(1, t.GuaranteeFee, true),
		g.moneyCol(1, t.MipymeCharge, true),
		g.moneyCol(1, t.LifeInsurance, true),
		g.moneyCol(1, t.BureauCharge, true),
		g.moneyCol(2, t.Total, true),
		col.New(2),
	)
}

// footerRow: leyenda de simulación.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Los valores son una simulación con la parametría vigente y no constituyen una oferta de crédito. "+
				"Las comisiones FNG y Ley MiPyme incluyen IVA. El seguro de vida se liquida sobre el saldo de cada periodo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) moneyCol(size int, v decimal.Decimal, bold bool) core.Col {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return col.New(size).Add(text.New(g.money(v), props.Text{
		Size: 7.5, Align: align.Right, Top: 1, Right: 1, Style: style,
	}))
}

// money formatea en pesos sin decimales con separador de miles es-CO (1.234.567).
func (g *MarotoPDFGenerator) money(v decimal.Decimal) string {
	return g.printer.Sprintf("%.0f", v.Round(0).InexactFloat64())
}

// percent formatea una fracción como porcentaje (0.0186 -> 1,86 %).
func (g *MarotoPDFGenerator) percent(v float64) string {
	return g.printer.Sprintf("%.2f %%", v*100)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
