package credit_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

func requireValidationError(t *testing.T, err error) *credit.ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *credit.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba *credit.ValidationError, se obtuvo %T", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr
}

// ── Producto FNG ──────────────────────────────────────────────────────────────

func TestValidateProduct(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateProduct(p, "", entity.ModalityCommercial), "sin producto")
	assert.NoError(t, credit.ValidateProduct(p, "EMP200", entity.ModalityCommercial))

	verr := requireValidationError(t, credit.ValidateProduct(p, "EMP100", entity.ModalityCommercial))
	assert.Equal(t, credit.ProductNotAllowed, verr.Kind)
	assert.Equal(t, "EMP100", verr.Name)

	verr = requireValidationError(t, credit.ValidateProduct(p, "EMP999", entity.ModalityCommercial))
	assert.Equal(t, credit.UnknownProduct, verr.Kind)
}

// ── Monto ─────────────────────────────────────────────────────────────────────

func TestValidateAmount_ModalityBounds(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateAmount(p, 500_000, entity.ModalityMicrocredit, ""), "mínimo inclusivo")
	assert.NoError(t, credit.ValidateAmount(p, 120_000_000, entity.ModalityMicrocredit, ""), "máximo inclusivo")

	verr := requireValidationError(t, credit.ValidateAmount(p, 400_000, entity.ModalityMicrocredit, ""))
	assert.Equal(t, credit.BelowMinimum, verr.Kind)
	assert.Equal(t, credit.ScopeModality, verr.Scope)
	assert.Equal(t, float64(500_000), verr.Bound)
	assert.Equal(t, entity.ModalityMicrocredit, verr.Name)

	verr = requireValidationError(t, credit.ValidateAmount(p, 130_000_000, entity.ModalityMicrocredit, ""))
	assert.Equal(t, credit.AboveMaximum, verr.Kind)
	assert.Equal(t, float64(120_000_000), verr.Bound)
}

func TestValidateAmount_ProductBoundsFirst(t *testing.T) {
	p := testSnapshot()

	verr := requireValidationError(t, credit.ValidateAmount(p, 25_000_000, entity.ModalityMicrocredit, "EMP100"))
	assert.Equal(t, credit.AboveMaximum, verr.Kind)
	assert.Equal(t, credit.ScopeProduct, verr.Scope)
	assert.Equal(t, float64(20_000_000), verr.Bound)
	assert.Equal(t, "Única anticipada", verr.Name)

	// 400.000 viola ambos mínimos; se reporta el del producto.
	verr = requireValidationError(t, credit.ValidateAmount(p, 400_000, entity.ModalityMicrocredit, "EMP100"))
	assert.Equal(t, credit.BelowMinimum, verr.Kind)
	assert.Equal(t, credit.ScopeProduct, verr.Scope)
	assert.Equal(t, float64(1_000_000), verr.Bound)
}

func TestValidateAmount_BothMustHold(t *testing.T) {
	p := testSnapshot()
	p.GuaranteeProducts["EMP200"] = entity.GuaranteeProduct{
		Code: "EMP200", Name: "Amplio", FeeKind: entity.FeeKindBalanceMonthly, MonthlyFeeRate: 0.005,
		AmountBounds:      &entity.Bounds{Min: 100_000, Max: 500_000_000},
		AllowedModalities: []string{entity.ModalityMicrocredit},
	}

	verr := requireValidationError(t, credit.ValidateAmount(p, 200_000_000, entity.ModalityMicrocredit, "EMP200"))
	assert.Equal(t, credit.ScopeModality, verr.Scope, "el producto lo permite pero la modalidad no")
}

func TestValidateAmount_NoMaximum(t *testing.T) {
	p := testSnapshot()
	assert.NoError(t, credit.ValidateAmount(p, 900_000_000, entity.ModalityCommercial, ""))
}

func TestValidateAmount_InvalidInputs(t *testing.T) {
	p := testSnapshot()

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		verr := requireValidationError(t, credit.ValidateAmount(p, amount, entity.ModalityCommercial, ""))
		assert.Equal(t, credit.MissingField, verr.Kind)
	}

	verr := requireValidationError(t, credit.ValidateAmount(p, 2_000_000, "HIPOTECARIO", ""))
	assert.Equal(t, credit.UnknownModality, verr.Kind)
}

// ── Plazo ─────────────────────────────────────────────────────────────────────

func TestValidateTerm(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateTerm(p, 6, "Mensual", ""))
	assert.NoError(t, credit.ValidateTerm(p, 2, "Trimestral", ""), "2 trimestres son 6 meses")

	verr := requireValidationError(t, credit.ValidateTerm(p, 5, "Mensual", ""))
	assert.Equal(t, credit.BelowMinimum, verr.Kind)
	assert.Equal(t, credit.ScopeGeneral, verr.Scope)
	assert.Equal(t, float64(6), verr.Bound)

	verr = requireValidationError(t, credit.ValidateTerm(p, 12, "Quincenal", ""))
	assert.Equal(t, credit.UnknownFrequency, verr.Kind)
	assert.Equal(t, "Quincenal", verr.Name)
}

func TestValidateTerm_ProductBoundsInMonths(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateTerm(p, 60, "Mensual", "EMP200"))
	assert.NoError(t, credit.ValidateTerm(p, 20, "Trimestral", "EMP200"))

	verr := requireValidationError(t, credit.ValidateTerm(p, 21, "Trimestral", "EMP200"))
	assert.Equal(t, credit.AboveMaximum, verr.Kind)
	assert.Equal(t, credit.ScopeProduct, verr.Scope)
	assert.Equal(t, float64(60), verr.Bound)
}

func TestValidateTerm_GlobalMaximum(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateTerm(p, 120, "Mensual", ""))
	assert.NoError(t, credit.ValidateTerm(p, 10, "Anual", ""))

	verr := requireValidationError(t, credit.ValidateTerm(p, 41, "Trimestral", ""))
	assert.Equal(t, credit.AboveMaximum, verr.Kind)
	assert.Equal(t, credit.ScopeGeneral, verr.Scope)
	assert.Equal(t, float64(120), verr.Bound)

	// Aplica también a productos sin límites de plazo propios.
	verr = requireValidationError(t, credit.ValidateTerm(p, 2_000_000, "Mensual", "EMP100"))
	assert.Equal(t, credit.AboveMaximum, verr.Kind)
	assert.Equal(t, credit.ScopeGeneral, verr.Scope)

	verr = requireValidationError(t, credit.ValidateTerm(p, math.MaxInt, "Anual", ""))
	assert.Equal(t, credit.AboveMaximum, verr.Kind, "cuotas × meses no debe desbordar")

	p.General.MaximumTermMonths = 0
	assert.ErrorIs(t, credit.ValidateTerm(p, 12, "Mensual", ""), domain.ErrInvalidConfig)
}

func TestValidateTerm_FrequencySetFromSnapshot(t *testing.T) {
	p := testSnapshot()
	p.General.PaymentFrequencies = map[string]int{
		"Mensual": 1, "Bimestral": 2, "Trimestral": 3, "Cuatrimestral": 4, "Semestral": 6,
	}

	assert.NoError(t, credit.ValidateTerm(p, 3, "Cuatrimestral", ""))
	verr := requireValidationError(t, credit.ValidateTerm(p, 1, "Anual", ""))
	assert.Equal(t, credit.UnknownFrequency, verr.Kind)
}

// ── Cédula de fondo especial ──────────────────────────────────────────────────

func requireIdentifierError(t *testing.T, err error) *credit.IdentifierError {
	t.Helper()
	require.Error(t, err)
	var ierr *credit.IdentifierError
	require.True(t, errors.As(err, &ierr), "se esperaba *credit.IdentifierError, se obtuvo %T", err)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedIdentifier)
	return ierr
}

func TestValidateIdentifier(t *testing.T) {
	p := testSnapshot()

	assert.NoError(t, credit.ValidateIdentifier(p, "111", "EMP080", testNow))
	assert.NoError(t, credit.ValidateIdentifier(p, " 111 ", "EMP080", testNow), "se ignoran espacios")
	assert.NoError(t, credit.ValidateIdentifier(p, "1-1.1", "EMP080", testNow), "se ignoran separadores")
	assert.NoError(t, credit.ValidateIdentifier(p, "", "EMP200", testNow), "producto no restringido")
	assert.NoError(t, credit.ValidateIdentifier(p, "", "", testNow), "sin producto")

	ierr := requireIdentifierError(t, credit.ValidateIdentifier(p, "999", "EMP080", testNow))
	assert.Equal(t, credit.IdentifierUnauthorized, ierr.Kind)

	ierr = requireIdentifierError(t, credit.ValidateIdentifier(p, "222", "EMP080", testNow))
	assert.Equal(t, credit.IdentifierWrongFund, ierr.Kind)
	assert.Equal(t, "EMP280", ierr.AuthorizedFund)
}

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "1020304050", credit.NormalizeIdentifier(" 1.020.304.050 "))
	assert.Equal(t, "79888777", credit.NormalizeIdentifier("79 888 777"))
	assert.Empty(t, credit.NormalizeIdentifier("CC"))
}

func TestValidateIdentifier_Expiry(t *testing.T) {
	p := testSnapshot()

	lastSecond := time.Date(2026, 12, 31, 23, 59, 59, 0, cot)
	assert.NoError(t, credit.ValidateIdentifier(p, "111", "EMP080", lastSecond), "el último día está vigente")

	// Misma hora expresada en UTC: la vigencia se evalúa en hora de Colombia.
	assert.NoError(t, credit.ValidateIdentifier(p, "111", "EMP080", lastSecond.UTC()))

	nextDay := time.Date(2027, 1, 1, 0, 0, 0, 0, cot)
	ierr := requireIdentifierError(t, credit.ValidateIdentifier(p, "111", "EMP080", nextDay))
	assert.Equal(t, credit.IdentifierExpired, ierr.Kind)

	// Vencido rechaza antes de revisar la cédula.
	ierr = requireIdentifierError(t, credit.ValidateIdentifier(p, "999", "EMP080", nextDay))
	assert.Equal(t, credit.IdentifierExpired, ierr.Kind)
}

func TestValidateIdentifier_NoValidityDate(t *testing.T) {
	p := testSnapshot()
	p.SpecialFund.ValidUntil = time.Time{}

	ierr := requireIdentifierError(t, credit.ValidateIdentifier(p, "111", "EMP080", testNow))
	assert.Equal(t, credit.IdentifierExpired, ierr.Kind)
}
