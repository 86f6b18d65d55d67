package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidConfig = errors.New("parametría inválida")

	// Fallas de resolución: la parametría no cubre la combinación solicitada.
	ErrClassification   = errors.New("no se pudo determinar el tipo de crédito")
	ErrRateUndetermined = errors.New("no se pudo determinar la tasa de interés")
	ErrLocationNotFound = errors.New("ubicación no encontrada en la parametría")

	ErrUnauthorizedIdentifier = errors.New("cédula no autorizada para el fondo")
	ErrComputation            = errors.New("error de cálculo en la tabla de amortización")
)
