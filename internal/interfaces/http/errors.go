package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
)

// writeError traduce los errores del motor a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verr *credit.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			ErrorResponse: dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(verr)},
			Field:         verr.Field,
			Kind:          string(verr.Kind),
			Scope:         string(verr.Scope),
			Bound:         verr.Bound,
			Name:          verr.Name,
		})
	}

	var ierr *credit.IdentifierError
	if errors.As(err, &ierr) {
		return c.Status(fiber.StatusForbidden).JSON(dto.IdentifierErrorResponse{
			ErrorResponse:  dto.ErrorResponse{Code: "IDENTIFIER_" + string(ierr.Kind), Message: identifierMessage(ierr)},
			AuthorizedFund: ierr.AuthorizedFund,
		})
	}

	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "LOCATION_NOT_FOUND", Message: "el municipio no está en la parametría"})
	case errors.Is(err, domain.ErrClassification):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CREDIT_TYPE_UNDETERMINED", Message: "no se pudo determinar el tipo de crédito"})
	case errors.Is(err, domain.ErrRateUndetermined):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "RATE_UNDETERMINED", Message: "no se pudo determinar la tasa de interés para este crédito"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrComputation):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "COMPUTATION", Message: "error calculando la tabla de amortización"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func validationMessage(e *credit.ValidationError) string {
	switch e.Kind {
	case credit.BelowMinimum:
		return scopeLabel(e) + ": el valor está por debajo del mínimo permitido"
	case credit.AboveMaximum:
		return scopeLabel(e) + ": el valor supera el máximo permitido"
	case credit.MissingField:
		return "campo obligatorio: " + e.Field
	case credit.InvalidValue:
		return "valor no válido para " + e.Field
	case credit.UnknownFrequency:
		return "periodicidad de pago no disponible: " + e.Name
	case credit.UnknownModality:
		return "modalidad de crédito no disponible: " + e.Name
	case credit.UnknownProduct:
		return "producto FNG no existe: " + e.Name
	case credit.ProductNotAllowed:
		return "el producto FNG " + e.Name + " no se ofrece para esta modalidad"
	default:
		return e.Error()
	}
}

func scopeLabel(e *credit.ValidationError) string {
	switch e.Scope {
	case credit.ScopeProduct:
		return "producto " + e.Name
	case credit.ScopeModality:
		return "modalidad " + e.Name
	default:
		return e.Field
	}
}

func identifierMessage(e *credit.IdentifierError) string {
	switch e.Kind {
	case credit.IdentifierExpired:
		return "el listado de cédulas autorizadas está vencido"
	case credit.IdentifierUnauthorized:
		return "la cédula no está autorizada para fondos especiales"
	case credit.IdentifierWrongFund:
		return "la cédula está autorizada para el fondo " + e.AuthorizedFund
	default:
		return e.Error()
	}
}
