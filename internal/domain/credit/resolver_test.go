package credit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// ── Tasas de interés ──────────────────────────────────────────────────────────

func TestResolveInterestRate_MatcherShapes(t *testing.T) {
	p := testSnapshot()

	tests := []struct {
		name       string
		amount     float64
		modality   string
		creditType string
		zone       string
		want       float64
	}{
		{"mapa por etiqueta", 5_000_000, entity.ModalityMicrocredit, "POPULAR_RURAL", entity.TypologyRural, 0.03},
		{"límite superior incluido", 6_000_000, entity.ModalityMicrocredit, "POPULAR_URBANO", entity.TypologyUrban, 0.032},
		{"lista de etiquetas", 10_000_000, entity.ModalityMicrocredit, "PRODUCTIVO_URBANO", entity.TypologyUrban, 0.025},
		{"etiqueta única", 30_000_000, entity.ModalityMicrocredit, credit.CreditTypeHighAmount, entity.TypologyUrban, 0.0186},
		{"límite inferior incluido", 25_000_000, entity.ModalityMicrocredit, credit.CreditTypeHighAmount, entity.TypologyRural, 0.0186},
		{"etiqueta calificada por zona", 80_000_000, entity.ModalityCommercial, "COMERCIAL", entity.TypologyUrban, 0.019},
		{"zona rural", 80_000_000, entity.ModalityCommercial, "COMERCIAL", entity.TypologyRural, 0.021},
		{"victimas usa la tabla propia con CONSUMO", 2_000_000, entity.ModalityVictimsLaw, "CONSUMO", entity.TypologyRural, 0.015},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, ok := credit.ResolveInterestRate(p, tt.amount, tt.modality, tt.creditType, tt.zone)
			require.True(t, ok)
			assert.Equal(t, tt.want, rates.Monthly)
		})
	}
}

func TestResolveInterestRate_FirstMatchWins(t *testing.T) {
	p := testSnapshot()
	p.InterestRates[entity.ModalityConsumer] = append(p.InterestRates[entity.ModalityConsumer], entity.RateBand{
		Amount:  entity.Range{From: 0},
		Matcher: entity.TypeMatcher{Kind: entity.MatcherSingleTag, Tag: "CONSUMO"},
		Rates:   entity.Rates{Monthly: 0.99},
	})

	rates, ok := credit.ResolveInterestRate(p, 2_000_000, entity.ModalityConsumer, "CONSUMO", entity.TypologyUrban)
	require.True(t, ok)
	assert.Equal(t, 0.0175, rates.Monthly)
	assert.Equal(t, 0.2314, rates.AnnualEffective)
}

func TestResolveInterestRate_NotFound(t *testing.T) {
	p := testSnapshot()

	_, ok := credit.ResolveInterestRate(p, 2_000_000, entity.ModalityVehicle, "VEHICULO", entity.TypologyUrban)
	assert.False(t, ok, "modalidad sin tabla")

	_, ok = credit.ResolveInterestRate(p, 2_000_000, entity.ModalityMicrocredit, "DESCONOCIDO", entity.TypologyUrban)
	assert.False(t, ok, "etiqueta sin banda")

	_, ok = credit.ResolveInterestRate(p, 7_000_000, entity.ModalityMicrocredit, "POPULAR_URBANO", entity.TypologyUrban)
	assert.False(t, ok, "monto fuera de la banda de la etiqueta")

	_, ok = credit.ResolveInterestRate(p, 2_000_000, entity.ModalityMicrocredit, "", entity.TypologyUrban)
	assert.False(t, ok, "tipo vacío")
}

// ── Comisión FNG ──────────────────────────────────────────────────────────────

func TestResolveGuaranteeFee(t *testing.T) {
	p := testSnapshot()

	fee, ok := credit.ResolveGuaranteeFee(p, "EMP200", 5_000_000, 12)
	require.True(t, ok)
	assert.Equal(t, 0.005, fee, "MENSUAL_SOBRE_SALDO devuelve la tasa mensual sin importar el plazo")

	fee, ok = credit.ResolveGuaranteeFee(p, "EMP100", 5_000_000, 24)
	require.True(t, ok)
	assert.Equal(t, 0.05, fee)

	fee, ok = credit.ResolveGuaranteeFee(p, "EMP100", 5_000_000, 18)
	require.True(t, ok)
	assert.Zero(t, fee, "plazo no tabulado cobra 0")

	_, ok = credit.ResolveGuaranteeFee(p, "EMP999", 5_000_000, 12)
	assert.False(t, ok)
}

// ── Ley MiPyme ────────────────────────────────────────────────────────────────

func TestResolveMipymeCommission_HalfOpenBands(t *testing.T) {
	p := testSnapshot()

	assert.Equal(t, 0.075, credit.ResolveMipymeCommission(p, 3_999_999, entity.ModalityMicrocredit))
	assert.Equal(t, 0.06, credit.ResolveMipymeCommission(p, 4_000_000, entity.ModalityMicrocredit),
		"el límite superior de la banda anterior pertenece a la siguiente")
	assert.Equal(t, 0.045, credit.ResolveMipymeCommission(p, 10_000_000, entity.ModalityMicrocredit))
	assert.Equal(t, 0.045, credit.ResolveMipymeCommission(p, 300_000_000, entity.ModalityMicrocredit))
}

func TestResolveMipymeCommission_OnlyMicrocredit(t *testing.T) {
	p := testSnapshot()

	assert.Zero(t, credit.ResolveMipymeCommission(p, 3_000_000, entity.ModalityCommercial))
	assert.Zero(t, credit.ResolveMipymeCommission(p, 3_000_000, entity.ModalityConsumer))
}

// ── Consulta a centrales ──────────────────────────────────────────────────────

func TestResolveBureauCost_ClosedBands(t *testing.T) {
	p := testSnapshot()

	tests := []struct {
		amount float64
		want   float64
	}{
		{1_000_000, 0.004},
		{6_000_000, 0.004}, // bandas cerradas: el límite queda en la primera banda
		{6_000_001, 0.006},
		{25_000_000, 0.006},
		{30_000_000, 0.008},
	}
	for _, tt := range tests {
		cost, ok := credit.ResolveBureauCost(p, tt.amount)
		require.True(t, ok, "monto %v", tt.amount)
		assert.Equal(t, tt.want, cost, "monto %v", tt.amount)
	}
}

func TestResolveBureauCost_NoBand(t *testing.T) {
	p := testSnapshot()
	p.BureauBands = nil

	_, ok := credit.ResolveBureauCost(p, 1_000_000)
	assert.False(t, ok)
}
