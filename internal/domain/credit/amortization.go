package credit

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

const monthsPerYear = 12

// GuaranteeCharge comisión FNG ya resuelta para el crédito.
type GuaranteeCharge struct {
	Kind     string               // entity.FeeKind*; vacío si el crédito no lleva FNG
	Fraction float64              // tasa mensual (MENSUAL_SOBRE_SALDO) o fracción total del plazo
	Timing   entity.PaymentTiming // aplica a PLANA_POR_PLAZO
}

// ScheduleInput parámetros ya resueltos de la tabla de amortización.
type ScheduleInput struct {
	Principal                float64
	MonthlyRate              float64
	TermCount                int
	MonthsPerPeriod          int
	VAT                      float64
	Guarantee                GuaranteeCharge
	MipymeCommission         float64
	MipymeTiming             entity.PaymentTiming
	LifeInsurancePerThousand float64
	BureauCost               float64 // en COP, se cobra en la primera cuota
}

// PeriodicRate capitaliza la tasa mensual a la periodicidad: (1+i)^meses - 1.
func PeriodicRate(monthlyRate float64, monthsPerPeriod int) float64 {
	return math.Pow(1+monthlyRate, float64(monthsPerPeriod)) - 1
}

// LevelPayment cuota constante (sistema francés): P·r / (1 - (1+r)^-n).
func LevelPayment(principal, periodicRate float64, n int) float64 {
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -float64(n)))
}

// mipymeBlock estado de la comisión MiPyme para el bloque anual en curso.
type mipymeBlock struct {
	index              int
	balanceAtYearStart float64
	perInstallment     float64
}

// GenerateSchedule genera la tabla de amortización periodo a periodo.
// El saldo se arrastra sin redondear; solo se redondea a 2 decimales al armar cada cuota.
func GenerateSchedule(in ScheduleInput) ([]entity.Installment, error) {
	if in.MonthlyRate == 0 || math.IsNaN(in.MonthlyRate) || in.MonthlyRate < 0 {
		return nil, domain.ErrRateUndetermined
	}
	if in.Principal <= 0 || in.TermCount <= 0 || in.MonthsPerPeriod <= 0 {
		return nil, fmt.Errorf("%w: capital, plazo y periodicidad deben ser positivos", domain.ErrInvalidInput)
	}

	rate := PeriodicRate(in.MonthlyRate, in.MonthsPerPeriod)
	if !isFinitePositive(rate) {
		return nil, fmt.Errorf("%w: tasa periódica %v", domain.ErrComputation, rate)
	}
	payment := LevelPayment(in.Principal, rate, in.TermCount)
	if !isFinitePositive(payment) {
		return nil, fmt.Errorf("%w: cuota constante %v", domain.ErrComputation, payment)
	}

	vatFactor := 1 + in.VAT
	totalMonths := in.TermCount * in.MonthsPerPeriod
	schedule := make([]entity.Installment, 0, in.TermCount)

	balance := in.Principal
	monthsElapsed := 0
	block := mipymeBlock{index: -1}

	for period := 1; period <= in.TermCount; period++ {
		interest := balance * rate
		principal := payment - interest

		guarantee := guaranteeCharge(in, balance, period, vatFactor)

		var mipyme float64
		if in.MipymeCommission > 0 {
			if idx := monthsElapsed / monthsPerYear; idx != block.index {
				block = openMipymeBlock(in, idx, balance, monthsElapsed, totalMonths, period, vatFactor)
				if in.MipymeTiming != entity.TimingDeferred {
					mipyme = block.balanceAtYearStart * in.MipymeCommission * vatFactor
				}
			}
			if in.MipymeTiming == entity.TimingDeferred {
				mipyme = block.perInstallment
			}
		}

		insurance := balance / 1000 * in.LifeInsurancePerThousand

		var bureau float64
		if period == 1 {
			bureau = in.BureauCost
		}

		total := payment + guarantee + mipyme + insurance + bureau
		if math.IsNaN(total) || math.IsInf(total, 0) {
			return nil, fmt.Errorf("%w: cuota %d no finita", domain.ErrComputation, period)
		}

		balance = math.Max(0, balance-principal)
		monthsElapsed += in.MonthsPerPeriod

		schedule = append(schedule, entity.Installment{
			Period:           period,
			LevelPayment:     money(payment),
			Principal:        money(principal),
			Interest:         money(interest),
			GuaranteeFee:     money(guarantee),
			MipymeCharge:     money(mipyme),
			LifeInsurance:    money(insurance),
			BureauCharge:     money(bureau),
			Total:            money(total),
			RemainingBalance: money(balance),
		})
	}
	return schedule, nil
}

// guaranteeCharge cargo FNG (con IVA) de la cuota según el tipo de comisión.
func guaranteeCharge(in ScheduleInput, balance float64, period int, vatFactor float64) float64 {
	g := in.Guarantee
	switch g.Kind {
	case entity.FeeKindBalanceMonthly:
		return balance * g.Fraction * float64(in.MonthsPerPeriod) * vatFactor
	case entity.FeeKindFlatByTerm, entity.FeeKindSingleUpfront:
		total := in.Principal * g.Fraction * vatFactor
		if g.Kind == entity.FeeKindFlatByTerm && g.Timing == entity.TimingDeferred {
			return total / float64(in.TermCount)
		}
		if period == 1 {
			return total
		}
	}
	return 0
}

// openMipymeBlock inicia un bloque anual: la base es el saldo al inicio del bloque.
// En forma diferida la comisión anual se reparte entre las cuotas del bloque, prorrateada
// si al crédito le quedan menos de 12 meses.
func openMipymeBlock(in ScheduleInput, idx int, balance float64, monthsElapsed, totalMonths, period int, vatFactor float64) mipymeBlock {
	b := mipymeBlock{index: idx, balanceAtYearStart: balance}
	if in.MipymeTiming != entity.TimingDeferred {
		return b
	}
	annual := balance * in.MipymeCommission * vatFactor

	withinYear := monthsElapsed % monthsPerYear
	installments := int(math.Ceil(float64(monthsPerYear-withinYear) / float64(in.MonthsPerPeriod)))
	if remaining := in.TermCount - period + 1; installments > remaining {
		installments = remaining
	}
	factor := math.Min(float64(totalMonths-monthsElapsed)/monthsPerYear, 1)

	b.perInstallment = annual * factor / float64(installments)
	return b
}

// SumSchedule totales por columna de la tabla ya redondeada.
func SumSchedule(schedule []entity.Installment) entity.ScheduleTotals {
	var t entity.ScheduleTotals
	for _, c := range schedule {
		t.Principal = t.Principal.Add(c.Principal)
		t.Interest = t.Interest.Add(c.Interest)
		t.GuaranteeFee = t.GuaranteeFee.Add(c.GuaranteeFee)
		t.MipymeCharge = t.MipymeCharge.Add(c.MipymeCharge)
		t.LifeInsurance = t.LifeInsurance.Add(c.LifeInsurance)
		t.BureauCharge = t.BureauCharge.Add(c.BureauCharge)
		t.Total = t.Total.Add(c.Total)
	}
	return t
}

func isFinitePositive(x float64) bool {
	return x > 0 && !math.IsNaN(x) && !math.IsInf(x, 0)
}

func money(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(2)
}
