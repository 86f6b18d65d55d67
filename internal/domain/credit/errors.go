package credit

import (
	"fmt"

	"github.com/jhoicas/simulador-creditos/internal/domain"
)

// ValidationKind tipo de error de validación de entrada.
type ValidationKind string

const (
	BelowMinimum      ValidationKind = "BELOW_MINIMUM"
	AboveMaximum      ValidationKind = "ABOVE_MAXIMUM"
	MissingField      ValidationKind = "MISSING_FIELD"
	InvalidValue      ValidationKind = "INVALID_VALUE"
	UnknownFrequency  ValidationKind = "UNKNOWN_FREQUENCY"
	UnknownModality   ValidationKind = "UNKNOWN_MODALITY"
	UnknownProduct    ValidationKind = "UNKNOWN_PRODUCT"
	ProductNotAllowed ValidationKind = "PRODUCT_NOT_ALLOWED"
)

// ValidationScope origen del límite violado.
type ValidationScope string

const (
	ScopeModality ValidationScope = "MODALITY"
	ScopeProduct  ValidationScope = "PRODUCT"
	ScopeGeneral  ValidationScope = "GENERAL"
)

// ValidationError error de entrada recuperable. Trae los datos necesarios para que la
// capa de presentación construya el mensaje (límite, alcance, nombre del producto o modalidad).
type ValidationError struct {
	Field string
	Kind  ValidationKind
	Scope ValidationScope
	Bound float64 // límite violado; 0 si no aplica
	Name  string  // modalidad o producto al que pertenece el límite
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case BelowMinimum, AboveMaximum:
		return fmt.Sprintf("%s: %s (%s %s, límite %.2f)", e.Field, e.Kind, e.Scope, e.Name, e.Bound)
	default:
		if e.Name != "" {
			return fmt.Sprintf("%s: %s (%s)", e.Field, e.Kind, e.Name)
		}
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// IdentifierKind motivo de rechazo de una cédula para un fondo especial.
type IdentifierKind string

const (
	IdentifierExpired      IdentifierKind = "EXPIRED"
	IdentifierUnauthorized IdentifierKind = "UNAUTHORIZED"
	IdentifierWrongFund    IdentifierKind = "WRONG_FUND"
)

// IdentifierError rechazo de cédula. AuthorizedFund se llena cuando Kind es WRONG_FUND.
type IdentifierError struct {
	Kind           IdentifierKind
	AuthorizedFund string
}

func (e *IdentifierError) Error() string {
	if e.Kind == IdentifierWrongFund {
		return fmt.Sprintf("cédula autorizada para el fondo %s", e.AuthorizedFund)
	}
	return "cédula rechazada: " + string(e.Kind)
}

// Unwrap permite errors.Is(err, domain.ErrUnauthorizedIdentifier).
func (e *IdentifierError) Unwrap() error { return domain.ErrUnauthorizedIdentifier }
