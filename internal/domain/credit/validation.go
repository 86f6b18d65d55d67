package credit

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// ValidateProduct verifica que el producto FNG exista y se ofrezca para la modalidad.
// Un código vacío significa que no se seleccionó producto.
func ValidateProduct(p *entity.ParameterSnapshot, productCode, modality string) error {
	if productCode == "" {
		return nil
	}
	product, ok := p.Product(productCode)
	if !ok {
		return &ValidationError{Field: "guarantee_product", Kind: UnknownProduct, Scope: ScopeProduct, Name: productCode}
	}
	if !product.AllowsModality(modality) {
		return &ValidationError{Field: "guarantee_product", Kind: ProductNotAllowed, Scope: ScopeProduct, Name: productCode}
	}
	return nil
}

// ValidateAmount valida el monto contra los límites del producto FNG (primero, por ser el
// límite más específico) y luego contra los de la modalidad. Ambos deben cumplirse.
func ValidateAmount(p *entity.ParameterSnapshot, amount float64, modality, productCode string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return &ValidationError{Field: "amount", Kind: MissingField, Scope: ScopeGeneral}
	}

	if productCode != "" {
		product, ok := p.Product(productCode)
		if !ok {
			return &ValidationError{Field: "guarantee_product", Kind: UnknownProduct, Scope: ScopeProduct, Name: productCode}
		}
		if product.AmountBounds != nil {
			if err := checkBounds("amount", amount, *product.AmountBounds, ScopeProduct, product.Name); err != nil {
				return err
			}
		}
	}

	constraint, ok := p.ModalityConstraints[modality]
	if !ok {
		return &ValidationError{Field: "modality", Kind: UnknownModality, Scope: ScopeModality, Name: modality}
	}
	return checkBounds("amount", amount, constraint.Amount, ScopeModality, modality)
}

// ValidateTerm convierte el plazo a meses con el conjunto de periodicidades de la parametría
// y lo valida contra los plazos mínimo y máximo globales y los límites del producto.
func ValidateTerm(p *entity.ParameterSnapshot, termCount int, frequency, productCode string) error {
	if termCount <= 0 {
		return &ValidationError{Field: "term_count", Kind: MissingField, Scope: ScopeGeneral}
	}
	monthsPerPeriod, ok := p.MonthsPerPeriod(frequency)
	if !ok {
		return &ValidationError{Field: "payment_frequency", Kind: UnknownFrequency, Scope: ScopeGeneral, Name: frequency}
	}
	maxMonths := p.General.MaximumTermMonths
	if maxMonths <= 0 {
		return fmt.Errorf("%w: plazo máximo no configurado", domain.ErrInvalidConfig)
	}
	aboveMax := &ValidationError{Field: "term_count", Kind: AboveMaximum, Scope: ScopeGeneral, Bound: float64(maxMonths)}
	// Se descarta antes de multiplicar para que un número de cuotas enorme no desborde los meses.
	if termCount > maxMonths {
		return aboveMax
	}
	months := termCount * monthsPerPeriod

	if months < p.General.MinimumTermMonths {
		return &ValidationError{
			Field: "term_count", Kind: BelowMinimum, Scope: ScopeGeneral,
			Bound: float64(p.General.MinimumTermMonths),
		}
	}
	if months > maxMonths {
		return aboveMax
	}

	if productCode == "" {
		return nil
	}
	product, ok := p.Product(productCode)
	if !ok {
		return &ValidationError{Field: "guarantee_product", Kind: UnknownProduct, Scope: ScopeProduct, Name: productCode}
	}
	if product.TermBounds != nil {
		return checkBounds("term_count", float64(months), *product.TermBounds, ScopeProduct, product.Name)
	}
	return nil
}

// ValidateIdentifier valida la cédula para productos restringidos. Orden: vigencia del listado
// (vencido rechaza sin mirar la cédula), existencia de la cédula y fondo autorizado.
// Para productos no restringidos no valida nada.
func ValidateIdentifier(p *entity.ParameterSnapshot, identifier, productCode string, now time.Time) error {
	product, ok := p.Product(productCode)
	if !ok || !product.RequiresIdentifier {
		return nil
	}

	if fundExpired(p.SpecialFund.ValidUntil, now) {
		return &IdentifierError{Kind: IdentifierExpired}
	}

	fund, ok := p.SpecialFund.Identifiers[NormalizeIdentifier(identifier)]
	if !ok {
		return &IdentifierError{Kind: IdentifierUnauthorized}
	}
	if fund != productCode {
		return &IdentifierError{Kind: IdentifierWrongFund, AuthorizedFund: fund}
	}
	return nil
}

// NormalizeIdentifier deja solo los dígitos de la cédula: "1.020.304.050" -> "1020304050".
func NormalizeIdentifier(identifier string) string {
	var b strings.Builder
	for _, r := range identifier {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fundExpired: la vigencia incluye todo el día ValidUntil. Sin fecha configurada se considera vencida.
func fundExpired(validUntil, now time.Time) bool {
	if validUntil.IsZero() {
		return true
	}
	y, m, d := validUntil.Date()
	end := time.Date(y, m, d+1, 0, 0, 0, 0, validUntil.Location())
	return !now.Before(end)
}

func checkBounds(field string, value float64, b entity.Bounds, scope ValidationScope, name string) error {
	if value < b.Min {
		return &ValidationError{Field: field, Kind: BelowMinimum, Scope: scope, Bound: b.Min, Name: name}
	}
	if b.Max > 0 && value > b.Max {
		return &ValidationError{Field: field, Kind: AboveMaximum, Scope: scope, Bound: b.Max, Name: name}
	}
	return nil
}
