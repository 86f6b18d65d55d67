// Package simulation expone el motor de crédito a la capa de entrega: traduce DTOs a la
// solicitud de dominio, ejecuta la simulación sobre la parametría cargada y arma la respuesta.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
	"github.com/jhoicas/simulador-creditos/pkg/logger"
)

// SimulationUseCase calcula simulaciones de crédito. No guarda estado entre llamadas:
// la parametría es de solo lectura y se comparte entre requests concurrentes.
type SimulationUseCase struct {
	params    *entity.ParameterSnapshot
	generator SchedulePDFGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewSimulationUseCase construye el caso de uso. generator puede ser nil si no se exponen PDFs.
func NewSimulationUseCase(params *entity.ParameterSnapshot, generator SchedulePDFGenerator, log *logger.Logger) *SimulationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulationUseCase{
		params:    params,
		generator: generator,
		log:       log.Named("simulation"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj usado para la vigencia de cédulas y la fecha de la simulación.
func (uc *SimulationUseCase) WithClock(now func() time.Time) *SimulationUseCase {
	uc.now = now
	return uc
}

// Simulate ejecuta la simulación completa.
//
// Retorna:
//   - *credit.ValidationError          (errors.Is domain.ErrInvalidInput) si la entrada viola un límite.
//   - *credit.IdentifierError          (errors.Is domain.ErrUnauthorizedIdentifier) si la cédula no aplica.
//   - domain.ErrLocationNotFound       si el municipio no está en la parametría.
//   - domain.ErrClassification / domain.ErrRateUndetermined si la parametría no cubre el crédito.
//   - domain.ErrComputation            si la tabla produce valores no finitos.
func (uc *SimulationUseCase) Simulate(ctx context.Context, in dto.SimulationRequest) (*dto.SimulationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := toLoanRequest(in)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	sim, err := credit.ComputeAmortizationSchedule(uc.params, req, now)
	if err != nil {
		uc.logFailure(req, err)
		return nil, err
	}

	resp := toSimulationResponse(uc.params, sim)
	resp.ID = uuid.New().String()
	resp.CreatedAt = now

	uc.log.Debug().
		Str("simulation_id", resp.ID).
		Str("modality", req.Modality).
		Str("credit_type", sim.CreditType).
		Float64("monthly_rate", sim.Rates.Monthly).
		Int("installments", len(sim.Schedule)).
		Msg("simulación calculada")
	return resp, nil
}

// SimulatePDF calcula la simulación y la renderiza como PDF.
func (uc *SimulationUseCase) SimulatePDF(ctx context.Context, in dto.SimulationRequest) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	resp, err := uc.Simulate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateSchedulePDF(ctx, resp)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("simulacion_%s_%s.pdf", strings.ToLower(resp.Request.Modality), resp.ID[:8])
	return pdfBytes, filename, nil
}

// ValidateIdentifier verifica una cédula contra el listado de fondos especiales sin simular.
// Para productos no restringidos responde válido.
func (uc *SimulationUseCase) ValidateIdentifier(ctx context.Context, in dto.IdentifierValidationRequest) (*dto.IdentifierValidationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if uc.params == nil {
		return nil, fmt.Errorf("%w: parametría no cargada", domain.ErrInvalidConfig)
	}
	code := strings.ToUpper(strings.TrimSpace(in.GuaranteeProduct))
	product, ok := uc.params.Product(code)
	if !ok {
		return nil, &credit.ValidationError{Field: "guarantee_product", Kind: credit.UnknownProduct, Scope: credit.ScopeProduct, Name: code}
	}
	if product.RequiresIdentifier && strings.TrimSpace(in.Identifier) == "" {
		return nil, &credit.ValidationError{Field: "identifier", Kind: credit.MissingField, Scope: credit.ScopeGeneral}
	}
	if err := credit.ValidateIdentifier(uc.params, in.Identifier, code, uc.now()); err != nil {
		return nil, err
	}
	return &dto.IdentifierValidationResponse{
		Valid:            true,
		GuaranteeProduct: code,
		Restricted:       product.RequiresIdentifier,
	}, nil
}

func (uc *SimulationUseCase) logFailure(req entity.LoanRequest, err error) {
	level := uc.log.Warn
	if errors.Is(err, domain.ErrComputation) || errors.Is(err, domain.ErrInvalidConfig) {
		level = uc.log.Error
	}
	level().Err(err).
		Str("modality", req.Modality).
		Str("guarantee_product", req.GuaranteeProduct).
		Float64("amount", req.Amount).
		Int("term_count", req.TermCount).
		Msg("simulación rechazada")
}

func toLoanRequest(in dto.SimulationRequest) (entity.LoanRequest, error) {
	timing := entity.PaymentTiming(strings.ToUpper(strings.TrimSpace(in.MipymeTiming)))
	switch timing {
	case "", entity.TimingUpfront, entity.TimingDeferred:
	default:
		return entity.LoanRequest{}, &credit.ValidationError{Field: "mipyme_timing", Kind: credit.InvalidValue, Scope: credit.ScopeGeneral, Name: in.MipymeTiming}
	}
	return entity.LoanRequest{
		Amount:           in.Amount,
		TermCount:        in.TermCount,
		PaymentFrequency: strings.TrimSpace(in.PaymentFrequency),
		Modality:         strings.ToUpper(strings.TrimSpace(in.Modality)),
		GuaranteeProduct: strings.ToUpper(strings.TrimSpace(in.GuaranteeProduct)),
		Identifier:       strings.TrimSpace(in.Identifier),
		Region:           strings.TrimSpace(in.Region),
		Municipality:     strings.TrimSpace(in.Municipality),
		MipymeTiming:     timing,
	}, nil
}
