package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationRequest body para POST /api/simulations.
// La tipología no se recibe: se deriva de departamento y municipio.
type SimulationRequest struct {
	Amount           float64 `json:"amount"`
	TermCount        int     `json:"term_count"`           // número de cuotas
	PaymentFrequency string  `json:"payment_frequency"`    // Mensual, Trimestral, ...
	Modality         string  `json:"modality"`             // MICROCREDITO, COMERCIAL, ...
	GuaranteeProduct string  `json:"guarantee_product"`    // código FNG
	Identifier       string  `json:"identifier,omitempty"` // cédula, solo fondos especiales
	Region           string  `json:"region"`
	Municipality     string  `json:"municipality"`
	MipymeTiming     string  `json:"mipyme_timing,omitempty"` // ANTICIPADO | DIFERIDO (por defecto)
}

// SimulationResponse resultado de la simulación.
type SimulationResponse struct {
	ID                string                `json:"id"`
	CreatedAt         time.Time             `json:"created_at"`
	ParametriaVersion string                `json:"parametria_version,omitempty"`
	Request           SimulationRequest     `json:"request"`
	Summary           RatesSummary          `json:"summary"`
	Installments      []InstallmentResponse `json:"installments"`
	Totals            TotalsResponse        `json:"totals"`
}

// RatesSummary tasas y costos resueltos para el crédito. Las tasas van como fracción (0.0186 = 1,86 %).
type RatesSummary struct {
	CreditType               string          `json:"credit_type"`
	Typology                 string          `json:"typology"`
	MonthlyRate              float64         `json:"monthly_rate"`
	AnnualEffectiveRate      float64         `json:"annual_effective_rate"`
	PeriodicRate             float64         `json:"periodic_rate"`
	MonthsPerPeriod          int             `json:"months_per_period"`
	TermMonths               int             `json:"term_months"`
	GuaranteeProduct         string          `json:"guarantee_product,omitempty"`
	GuaranteeProductName     string          `json:"guarantee_product_name,omitempty"`
	GuaranteeFeeKind         string          `json:"guarantee_fee_kind,omitempty"`
	GuaranteeFee             float64         `json:"guarantee_fee"`
	GuaranteeTiming          string          `json:"guarantee_timing,omitempty"`
	MipymeCommission         float64         `json:"mipyme_commission"`
	MipymeTiming             string          `json:"mipyme_timing,omitempty"`
	VAT                      float64         `json:"vat"`
	LifeInsurancePerThousand float64         `json:"life_insurance_per_thousand"`
	BureauCostSMLV           float64         `json:"bureau_cost_smlv"`
	BureauCost               decimal.Decimal `json:"bureau_cost"`
	LevelPayment             decimal.Decimal `json:"level_payment"`
}

// InstallmentResponse fila de la tabla de amortización.
type InstallmentResponse struct {
	Period           int             `json:"period"`
	LevelPayment     decimal.Decimal `json:"level_payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	GuaranteeFee     decimal.Decimal `json:"guarantee_fee"`
	MipymeCharge     decimal.Decimal `json:"mipyme_charge"`
	LifeInsurance    decimal.Decimal `json:"life_insurance"`
	BureauCharge     decimal.Decimal `json:"bureau_charge"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// TotalsResponse fila de totales (suma de cada columna).
type TotalsResponse struct {
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	GuaranteeFee  decimal.Decimal `json:"guarantee_fee"`
	MipymeCharge  decimal.Decimal `json:"mipyme_charge"`
	LifeInsurance decimal.Decimal `json:"life_insurance"`
	BureauCharge  decimal.Decimal `json:"bureau_charge"`
	Total         decimal.Decimal `json:"total"`
}

// IdentifierValidationRequest body para POST /api/identifiers/validate.
type IdentifierValidationRequest struct {
	Identifier       string `json:"identifier"`
	GuaranteeProduct string `json:"guarantee_product"`
}

// IdentifierValidationResponse resultado de la validación de cédula.
type IdentifierValidationResponse struct {
	Valid            bool   `json:"valid"`
	GuaranteeProduct string `json:"guarantee_product"`
	Restricted       bool   `json:"restricted"`
}
