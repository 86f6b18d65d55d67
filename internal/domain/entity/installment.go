package entity

import "github.com/shopspring/decimal"

// Installment cuota de la tabla de amortización. Valores redondeados a 2 decimales.
type Installment struct {
	Period           int
	LevelPayment     decimal.Decimal // cuota constante (capital + interés)
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	GuaranteeFee     decimal.Decimal // FNG con IVA
	MipymeCharge     decimal.Decimal // Ley MiPyme con IVA
	LifeInsurance    decimal.Decimal
	BureauCharge     decimal.Decimal // consulta a centrales, solo cuota 1
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
}

// ScheduleTotals suma de cada columna de la tabla.
type ScheduleTotals struct {
	Principal     decimal.Decimal
	Interest      decimal.Decimal
	GuaranteeFee  decimal.Decimal
	MipymeCharge  decimal.Decimal
	LifeInsurance decimal.Decimal
	BureauCharge  decimal.Decimal
	Total         decimal.Decimal
}
