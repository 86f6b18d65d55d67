package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parametría de prueba
//
// SMLV de 1.000.000 para que los umbrales en SMLV se lean directo en pesos:
// 6 SMLV = 6.000.000, 25 SMLV = 25.000.000.
// ──────────────────────────────────────────────────────────────────────────────

const testSMLV = 1_000_000

var cot = time.FixedZone("COT", -5*60*60)

// testNow fecha dentro de la vigencia del listado de cédulas.
var testNow = time.Date(2026, 10, 17, 10, 0, 0, 0, cot)

func upTo(v float64) *float64 { return &v }

func testSnapshot() *entity.ParameterSnapshot {
	return &entity.ParameterSnapshot{
		Version: "test",
		General: entity.GeneralConfig{
			MinimumWage:                  testSMLV,
			MinimumTermMonths:            6,
			MaximumTermMonths:            120,
			VAT:                          0.19,
			LifeInsuranceRatePerThousand: 0.5,
			PaymentFrequencies: map[string]int{
				"Mensual": 1, "Bimestral": 2, "Trimestral": 3, "Semestral": 6, "Anual": 12,
			},
		},
		InterestRates: map[string][]entity.RateBand{
			entity.ModalityMicrocredit: {
				{
					Amount: entity.Range{From: 0, To: upTo(6_000_000)},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherKeyed, Keyed: map[string]entity.Rates{
						"POPULAR_RURAL":  {Monthly: 0.03, AnnualEffective: 0.4258},
						"POPULAR_URBANO": {Monthly: 0.032, AnnualEffective: 0.4592},
					}},
				},
				{
					Amount:  entity.Range{From: 0, To: upTo(25_000_000)},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherTagList, Tags: []string{"PRODUCTIVO_RURAL", "PRODUCTIVO_URBANO"}},
					Rates:   entity.Rates{Monthly: 0.025, AnnualEffective: 0.3449},
				},
				{
					Amount:  entity.Range{From: 25_000_000},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherSingleTag, Tag: "PRODUCTIVO_MAYOR_MONTO"},
					Rates:   entity.Rates{Monthly: 0.0186, AnnualEffective: 0.2475},
				},
			},
			entity.ModalityCommercial: {
				{
					Amount: entity.Range{From: 0},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherKeyed, Keyed: map[string]entity.Rates{
						"COMERCIAL_URBANO": {Monthly: 0.019, AnnualEffective: 0.2534},
						"COMERCIAL_RURAL":  {Monthly: 0.021, AnnualEffective: 0.2836},
					}},
				},
			},
			entity.ModalityConsumer: {
				{
					Amount:  entity.Range{From: 0},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherTagList, Tags: []string{"CONSUMO"}},
					Rates:   entity.Rates{Monthly: 0.0175, AnnualEffective: 0.2314},
				},
			},
			entity.ModalityVictimsLaw: {
				{
					Amount:  entity.Range{From: 0},
					Matcher: entity.TypeMatcher{Kind: entity.MatcherTagList, Tags: []string{"CONSUMO"}},
					Rates:   entity.Rates{Monthly: 0.015, AnnualEffective: 0.1956},
				},
			},
		},
		GuaranteeProducts: map[string]entity.GuaranteeProduct{
			"EMP200": {
				Code: "EMP200", Name: "Mensual sobre saldo",
				FeeKind: entity.FeeKindBalanceMonthly, MonthlyFeeRate: 0.005,
				TermBounds:        &entity.Bounds{Min: 6, Max: 60},
				AllowedModalities: []string{entity.ModalityCommercial, entity.ModalityMicrocredit},
				PaymentTiming:     entity.TimingDeferred,
			},
			"EMP100": {
				Code: "EMP100", Name: "Única anticipada",
				FeeKind:           entity.FeeKindSingleUpfront,
				FeeByTerm:         map[int]float64{12: 0.03, 24: 0.05},
				AmountBounds:      &entity.Bounds{Min: 1_000_000, Max: 20_000_000},
				AllowedModalities: []string{entity.ModalityMicrocredit},
			},
			"EMP150": {
				Code: "EMP150", Name: "Plana diferida",
				FeeKind:           entity.FeeKindFlatByTerm,
				FeeByTerm:         map[int]float64{12: 0.024},
				AllowedModalities: []string{entity.ModalityConsumer, entity.ModalityVictimsLaw},
				PaymentTiming:     entity.TimingDeferred,
			},
			"EMP080": {
				Code: "EMP080", Name: "Fondo víctimas",
				FeeKind:            entity.FeeKindFlatByTerm,
				FeeByTerm:          map[int]float64{12: 0.01},
				AllowedModalities:  []string{entity.ModalityVictimsLaw},
				RequiresIdentifier: true,
			},
			"EMP280": {
				Code: "EMP280", Name: "Fondo rural",
				FeeKind:            entity.FeeKindSingleUpfront,
				FeeByTerm:          map[int]float64{12: 0.012},
				AllowedModalities:  []string{entity.ModalityMicrocredit},
				RequiresIdentifier: true,
			},
		},
		MipymeBands: []entity.MipymeBand{
			{Range: entity.Range{From: 0, To: upTo(4)}, Commission: 0.075},
			{Range: entity.Range{From: 4, To: upTo(10)}, Commission: 0.06},
			{Range: entity.Range{From: 10}, Commission: 0.045},
		},
		BureauBands: []entity.BureauBand{
			{Range: entity.Range{From: 0, To: upTo(6)}, CostMinimumWages: 0.004},
			{Range: entity.Range{From: 6, To: upTo(25)}, CostMinimumWages: 0.006},
			{Range: entity.Range{From: 25}, CostMinimumWages: 0.008},
		},
		ModalityConstraints: map[string]entity.ModalityConstraint{
			entity.ModalityMicrocredit: {Amount: entity.Bounds{Min: 500_000, Max: 120_000_000}},
			entity.ModalityCommercial:  {Amount: entity.Bounds{Min: 1_000_000}},
			entity.ModalityConsumer:    {Amount: entity.Bounds{Min: 1_000_000, Max: 50_000_000}},
			entity.ModalityVehicle:     {Amount: entity.Bounds{Min: 1_000_000}},
			entity.ModalityVictimsLaw:  {Amount: entity.Bounds{Min: 1_000_000, Max: 30_000_000}},
		},
		Locations: map[string]map[string]string{
			"ANTIOQUIA": {"MEDELLIN": entity.TypologyUrban, "URRAO": entity.TypologyRural},
		},
		SpecialFund: entity.SpecialFund{
			ValidUntil:  time.Date(2026, 12, 31, 0, 0, 0, 0, cot),
			Identifiers: map[string]string{"111": "EMP080", "222": "EMP280"},
		},
	}
}

// assertMoney compara un valor monetario con tolerancia de un centavo.
func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.True(t, got.Sub(w).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"esperado %s, obtenido %s", want, got.StringFixed(2))
}
