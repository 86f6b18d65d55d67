package simulation

import (
	"context"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
)

// SchedulePDFGenerator renderiza una simulación ya calculada como PDF.
// Implementación: infrastructure/pdf (maroto).
type SchedulePDFGenerator interface {
	GenerateSchedulePDF(ctx context.Context, sim *dto.SimulationResponse) ([]byte, error)
}
