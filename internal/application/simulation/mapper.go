package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

func toSimulationResponse(p *entity.ParameterSnapshot, sim *credit.Simulation) *dto.SimulationResponse {
	req := sim.Request
	resp := &dto.SimulationResponse{
		ParametriaVersion: p.Version,
		Request: dto.SimulationRequest{
			Amount:           req.Amount,
			TermCount:        req.TermCount,
			PaymentFrequency: req.PaymentFrequency,
			Modality:         req.Modality,
			GuaranteeProduct: req.GuaranteeProduct,
			Identifier:       req.Identifier,
			Region:           req.Region,
			Municipality:     req.Municipality,
			MipymeTiming:     string(req.MipymeTiming),
		},
		Summary: dto.RatesSummary{
			CreditType:               sim.CreditType,
			Typology:                 sim.Typology,
			MonthlyRate:              sim.Rates.Monthly,
			AnnualEffectiveRate:      sim.Rates.AnnualEffective,
			PeriodicRate:             sim.PeriodicRate,
			MonthsPerPeriod:          sim.MonthsPerPeriod,
			TermMonths:               sim.TermMonths,
			GuaranteeProduct:         req.GuaranteeProduct,
			GuaranteeFeeKind:         sim.Guarantee.Kind,
			GuaranteeFee:             sim.Guarantee.Fraction,
			GuaranteeTiming:          string(sim.Guarantee.Timing),
			MipymeCommission:         sim.MipymeCommission,
			VAT:                      p.General.VAT,
			LifeInsurancePerThousand: p.General.LifeInsuranceRatePerThousand,
			BureauCostSMLV:           sim.BureauCostSMLV,
			BureauCost:               decimal.NewFromFloat(sim.BureauCost).Round(2),
		},
		Installments: make([]dto.InstallmentResponse, 0, len(sim.Schedule)),
		Totals: dto.TotalsResponse{
			Principal:     sim.Totals.Principal,
			Interest:      sim.Totals.Interest,
			GuaranteeFee:  sim.Totals.GuaranteeFee,
			MipymeCharge:  sim.Totals.MipymeCharge,
			LifeInsurance: sim.Totals.LifeInsurance,
			BureauCharge:  sim.Totals.BureauCharge,
			Total:         sim.Totals.Total,
		},
	}
	if product, ok := p.Product(req.GuaranteeProduct); ok {
		resp.Summary.GuaranteeProductName = product.Name
	}
	if sim.MipymeCommission > 0 {
		resp.Summary.MipymeTiming = string(req.MipymeTiming)
	}
	if len(sim.Schedule) > 0 {
		resp.Summary.LevelPayment = sim.Schedule[0].LevelPayment
	}

	for _, c := range sim.Schedule {
		resp.Installments = append(resp.Installments, dto.InstallmentResponse{
			Period:           c.Period,
			LevelPayment:     c.LevelPayment,
			Principal:        c.Principal,
			Interest:         c.Interest,
			GuaranteeFee:     c.GuaranteeFee,
			MipymeCharge:     c.MipymeCharge,
			LifeInsurance:    c.LifeInsurance,
			BureauCharge:     c.BureauCharge,
			Total:            c.Total,
			RemainingBalance: c.RemainingBalance,
		})
	}
	return resp
}
