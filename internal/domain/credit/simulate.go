package credit

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// Simulation resultado completo: parámetros resueltos y tabla de amortización.
type Simulation struct {
	Request          entity.LoanRequest
	Typology         string
	CreditType       string
	Rates            entity.Rates
	MonthsPerPeriod  int
	TermMonths       int
	PeriodicRate     float64
	Guarantee        GuaranteeCharge
	MipymeCommission float64
	BureauCostSMLV   float64
	BureauCost       float64 // en COP
	Schedule         []entity.Installment
	Totals           entity.ScheduleTotals
}

// ComputeAmortizationSchedule ejecuta la simulación completa: tipología por ubicación,
// validaciones, clasificación, resolución de tasas y comisiones y tabla de amortización.
// now solo se usa para la vigencia del listado de cédulas de fondos especiales.
func ComputeAmortizationSchedule(p *entity.ParameterSnapshot, req entity.LoanRequest, now time.Time) (*Simulation, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: parametría no cargada", domain.ErrInvalidConfig)
	}
	if err := checkRequired(p, req); err != nil {
		return nil, err
	}

	typology, ok := p.Typology(req.Region, req.Municipality)
	if !ok {
		return nil, fmt.Errorf("%w: %s / %s", domain.ErrLocationNotFound, req.Region, req.Municipality)
	}

	if err := ValidateProduct(p, req.GuaranteeProduct, req.Modality); err != nil {
		return nil, err
	}
	if err := ValidateAmount(p, req.Amount, req.Modality, req.GuaranteeProduct); err != nil {
		return nil, err
	}
	if err := ValidateTerm(p, req.TermCount, req.PaymentFrequency, req.GuaranteeProduct); err != nil {
		return nil, err
	}
	if err := ValidateIdentifier(p, req.Identifier, req.GuaranteeProduct, now); err != nil {
		return nil, err
	}

	creditType := ClassifyCreditType(p, req.Amount, req.Modality, typology)
	if creditType == "" {
		return nil, fmt.Errorf("%w: modalidad %s", domain.ErrClassification, req.Modality)
	}
	rates, ok := ResolveInterestRate(p, req.Amount, req.Modality, creditType, typology)
	if !ok || rates.Monthly == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrRateUndetermined, req.Modality, creditType)
	}

	monthsPerPeriod, _ := p.MonthsPerPeriod(req.PaymentFrequency)
	termMonths := req.TermCount * monthsPerPeriod

	sim := &Simulation{
		Request:          req,
		Typology:         typology,
		CreditType:       creditType,
		Rates:            rates,
		MonthsPerPeriod:  monthsPerPeriod,
		TermMonths:       termMonths,
		PeriodicRate:     PeriodicRate(rates.Monthly, monthsPerPeriod),
		MipymeCommission: ResolveMipymeCommission(p, req.Amount, req.Modality),
	}

	product, _ := p.Product(req.GuaranteeProduct)
	fraction, _ := ResolveGuaranteeFee(p, req.GuaranteeProduct, req.Amount, termMonths)
	sim.Guarantee = GuaranteeCharge{Kind: product.FeeKind, Fraction: fraction, Timing: GuaranteeTiming(product)}

	if costSMLV, ok := ResolveBureauCost(p, req.Amount); ok {
		sim.BureauCostSMLV = costSMLV
		sim.BureauCost = costSMLV * p.General.MinimumWage
	}

	mipymeTiming := req.MipymeTiming
	if mipymeTiming == "" {
		mipymeTiming = entity.TimingDeferred
	}
	sim.Request.MipymeTiming = mipymeTiming

	schedule, err := GenerateSchedule(ScheduleInput{
		Principal:                req.Amount,
		MonthlyRate:              rates.Monthly,
		TermCount:                req.TermCount,
		MonthsPerPeriod:          monthsPerPeriod,
		VAT:                      p.General.VAT,
		Guarantee:                sim.Guarantee,
		MipymeCommission:         sim.MipymeCommission,
		MipymeTiming:             mipymeTiming,
		LifeInsurancePerThousand: p.General.LifeInsuranceRatePerThousand,
		BureauCost:               sim.BureauCost,
	})
	if err != nil {
		return nil, err
	}
	sim.Schedule = schedule
	sim.Totals = SumSchedule(schedule)
	return sim, nil
}

// GuaranteeTiming forma de pago efectiva del cargo FNG: MENSUAL_SOBRE_SALDO siempre es
// diferido; el resto es anticipado salvo que el producto indique lo contrario.
func GuaranteeTiming(product entity.GuaranteeProduct) entity.PaymentTiming {
	if product.FeeKind == entity.FeeKindBalanceMonthly {
		return entity.TimingDeferred
	}
	if product.PaymentTiming == "" {
		return entity.TimingUpfront
	}
	return product.PaymentTiming
}

func checkRequired(p *entity.ParameterSnapshot, req entity.LoanRequest) error {
	missing := func(field string) error {
		return &ValidationError{Field: field, Kind: MissingField, Scope: ScopeGeneral}
	}
	switch {
	case req.Amount <= 0:
		return missing("amount")
	case req.TermCount <= 0:
		return missing("term_count")
	case strings.TrimSpace(req.PaymentFrequency) == "":
		return missing("payment_frequency")
	case strings.TrimSpace(req.Modality) == "":
		return missing("modality")
	case strings.TrimSpace(req.GuaranteeProduct) == "":
		return missing("guarantee_product")
	case strings.TrimSpace(req.Region) == "":
		return missing("region")
	case strings.TrimSpace(req.Municipality) == "":
		return missing("municipality")
	}
	if strings.TrimSpace(req.Identifier) == "" {
		if product, ok := p.Product(req.GuaranteeProduct); ok && product.RequiresIdentifier {
			return missing("identifier")
		}
	}
	return nil
}
