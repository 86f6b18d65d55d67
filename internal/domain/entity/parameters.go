package entity

import "time"

// Modalidades de crédito.
const (
	ModalityMicrocredit = "MICROCREDITO"
	ModalityCommercial  = "COMERCIAL"
	ModalityConsumer    = "CONSUMO"
	ModalityVehicle     = "VEHICULO"
	ModalityVictimsLaw  = "LEY_DE_VICTIMAS" // Se tasa como CONSUMO
)

// Tipologías de municipio.
const (
	TypologyRural = "RURAL"
	TypologyUrban = "URBANO"
)

// Tipos de comisión FNG.
const (
	FeeKindFlatByTerm     = "PLANA_POR_PLAZO"     // Porcentaje según plazo exacto en meses
	FeeKindBalanceMonthly = "MENSUAL_SOBRE_SALDO" // Tasa mensual sobre saldo, cobrada en cada cuota
	FeeKindSingleUpfront  = "UNICA_ANTICIPADA"    // Porcentaje según plazo, cobrado una vez
)

// PaymentTiming forma de pago de un cargo accesorio (FNG o Ley MiPyme).
type PaymentTiming string

const (
	TimingUpfront  PaymentTiming = "ANTICIPADO"
	TimingDeferred PaymentTiming = "DIFERIDO"
)

// ParameterSnapshot es la parametría completa con la que se simula un crédito.
// Se carga una vez y no se modifica durante la vida del proceso.
type ParameterSnapshot struct {
	Version             string
	General             GeneralConfig
	InterestRates       map[string][]RateBand       // modalidad -> bandas ordenadas
	GuaranteeProducts   map[string]GuaranteeProduct // código FNG -> producto
	MipymeBands         []MipymeBand                // [desde, hasta) en SMLV
	BureauBands         []BureauBand                // [desde, hasta] en SMLV
	ModalityConstraints map[string]ModalityConstraint
	Locations           map[string]map[string]string // departamento -> municipio -> tipología
	SpecialFund         SpecialFund
}

// GeneralConfig valores globales de la parametría.
type GeneralConfig struct {
	MinimumWage                  float64 // SMLV en COP
	MinimumTermMonths            int
	MaximumTermMonths            int     // tope global del plazo en meses
	VAT                          float64 // fracción, ej. 0.19
	LifeInsuranceRatePerThousand float64

	// PaymentFrequencies es el conjunto de periodicidades activo (nombre -> meses por periodo).
	PaymentFrequencies map[string]int
}

// Range rango numérico; To nil significa sin límite superior.
type Range struct {
	From float64
	To   *float64
}

// ContainsClosed evalúa x contra [From, To].
func (r Range) ContainsClosed(x float64) bool {
	return x >= r.From && (r.To == nil || x <= *r.To)
}

// ContainsHalfOpen evalúa x contra [From, To).
func (r Range) ContainsHalfOpen(x float64) bool {
	return x >= r.From && (r.To == nil || x < *r.To)
}

// Rates tasas de interés de una banda.
type Rates struct {
	Monthly         float64 // mes vencido (M.V.)
	AnnualEffective float64 // efectiva anual (E.A.)
}

// MatcherKind forma del selector de tipos de crédito de una banda.
type MatcherKind int

const (
	MatcherTagList   MatcherKind = iota + 1 // lista de etiquetas aceptadas
	MatcherSingleTag                        // una sola etiqueta
	MatcherKeyed                            // etiqueta -> tasas propias
)

// TypeMatcher selector de tipos de crédito. La parametría real mezcla las tres formas.
type TypeMatcher struct {
	Kind  MatcherKind
	Tags  []string
	Tag   string
	Keyed map[string]Rates
}

// RateBand banda de monto de la tabla de tasas.
type RateBand struct {
	Amount  Range
	Matcher TypeMatcher
	Rates   Rates // no aplica cuando Matcher.Kind == MatcherKeyed
}

// Bounds límites inclusivos. Max 0 significa sin máximo.
type Bounds struct {
	Min float64
	Max float64
}

// GuaranteeProduct producto del Fondo Nacional de Garantías.
type GuaranteeProduct struct {
	Code               string
	Name               string
	FeeKind            string
	FeeByTerm          map[int]float64 // plazo en meses -> fracción
	MonthlyFeeRate     float64
	AmountBounds       *Bounds
	TermBounds         *Bounds // en meses
	AllowedModalities  []string
	PaymentTiming      PaymentTiming
	RequiresIdentifier bool
}

// AllowsModality indica si el producto se ofrece para la modalidad.
func (g GuaranteeProduct) AllowsModality(modality string) bool {
	for _, m := range g.AllowedModalities {
		if m == modality {
			return true
		}
	}
	return false
}

// MipymeBand banda de la comisión Ley MiPyme.
type MipymeBand struct {
	Range      Range
	Commission float64
}

// BureauBand banda del costo de consulta a centrales de riesgo.
type BureauBand struct {
	Range            Range
	CostMinimumWages float64
}

// ModalityConstraint restricciones generales de una modalidad.
type ModalityConstraint struct {
	Amount Bounds
}

// SpecialFund cédulas autorizadas para fondos especiales.
type SpecialFund struct {
	ValidUntil  time.Time         // último día de vigencia (inclusive)
	Identifiers map[string]string // cédula -> código FNG autorizado
}

// MonthsPerPeriod meses por periodo según el conjunto de periodicidades activo.
func (p *ParameterSnapshot) MonthsPerPeriod(frequency string) (int, bool) {
	m, ok := p.General.PaymentFrequencies[frequency]
	return m, ok && m > 0
}

// Typology tipología del municipio; es la única fuente de la tipología.
func (p *ParameterSnapshot) Typology(region, municipality string) (string, bool) {
	municipalities, ok := p.Locations[region]
	if !ok {
		return "", false
	}
	t, ok := municipalities[municipality]
	return t, ok
}

// Product busca un producto FNG por código.
func (p *ParameterSnapshot) Product(code string) (GuaranteeProduct, bool) {
	g, ok := p.GuaranteeProducts[code]
	return g, ok
}
