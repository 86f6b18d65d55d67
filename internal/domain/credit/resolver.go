package credit

import (
	"strings"

	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// ResolveInterestRate busca la tasa para el monto y tipo de crédito en la tabla de la modalidad.
// Las bandas son cerradas [desde, hasta] y gana la primera que coincida.
// El segundo valor es false cuando ninguna banda aplica (tasa no determinada).
func ResolveInterestRate(p *entity.ParameterSnapshot, amount float64, modality, creditType, zone string) (entity.Rates, bool) {
	if p == nil || creditType == "" {
		return entity.Rates{}, false
	}
	bands, ok := p.InterestRates[modality]
	if !ok {
		return entity.Rates{}, false
	}
	candidates := tagCandidates(creditType, zone)
	for _, band := range bands {
		if !band.Amount.ContainsClosed(amount) {
			continue
		}
		if rates, ok := matchBand(band, candidates); ok {
			return rates, true
		}
	}
	return entity.Rates{}, false
}

// tagCandidates etiquetas aceptables: la etiqueta tal cual y la calificada por zona ({tipo}_{ZONA}).
func tagCandidates(creditType, zone string) []string {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	if zone == "" || strings.HasSuffix(creditType, "_"+zone) {
		return []string{creditType}
	}
	return []string{creditType, creditType + "_" + zone}
}

// matchBand despacha según la forma del selector de la banda.
func matchBand(band entity.RateBand, candidates []string) (entity.Rates, bool) {
	switch band.Matcher.Kind {
	case entity.MatcherTagList:
		return matchTagList(band, candidates)
	case entity.MatcherSingleTag:
		return matchSingleTag(band, candidates)
	case entity.MatcherKeyed:
		return matchKeyed(band, candidates)
	default:
		return entity.Rates{}, false
	}
}

func matchTagList(band entity.RateBand, candidates []string) (entity.Rates, bool) {
	for _, tag := range band.Matcher.Tags {
		for _, c := range candidates {
			if tag == c {
				return band.Rates, true
			}
		}
	}
	return entity.Rates{}, false
}

func matchSingleTag(band entity.RateBand, candidates []string) (entity.Rates, bool) {
	for _, c := range candidates {
		if band.Matcher.Tag == c {
			return band.Rates, true
		}
	}
	return entity.Rates{}, false
}

func matchKeyed(band entity.RateBand, candidates []string) (entity.Rates, bool) {
	for _, c := range candidates {
		if rates, ok := band.Matcher.Keyed[c]; ok {
			return rates, true
		}
	}
	return entity.Rates{}, false
}

// ResolveGuaranteeFee devuelve la comisión FNG del producto.
// MENSUAL_SOBRE_SALDO: tasa mensual (se aplica sobre el saldo en cada cuota).
// PLANA_POR_PLAZO y UNICA_ANTICIPADA: fracción para el plazo exacto en meses, 0 si no está tabulado.
// El segundo valor es false si el producto no existe. La parametría vigente no escalona la
// comisión por monto, así que el monto no interviene.
func ResolveGuaranteeFee(p *entity.ParameterSnapshot, productCode string, _ float64, termMonths int) (float64, bool) {
	if p == nil {
		return 0, false
	}
	product, ok := p.Product(productCode)
	if !ok {
		return 0, false
	}
	if product.FeeKind == entity.FeeKindBalanceMonthly {
		return product.MonthlyFeeRate, true
	}
	return product.FeeByTerm[termMonths], true
}

// ResolveMipymeCommission comisión Ley MiPyme. Solo aplica a MICROCREDITO.
// Las bandas son semiabiertas [desde, hasta) en SMLV, a diferencia de las demás tablas.
func ResolveMipymeCommission(p *entity.ParameterSnapshot, amount float64, modality string) float64 {
	if p == nil || modality != entity.ModalityMicrocredit || p.General.MinimumWage <= 0 {
		return 0
	}
	smlv := amount / p.General.MinimumWage
	for _, band := range p.MipymeBands {
		if band.Range.ContainsHalfOpen(smlv) {
			return band.Commission
		}
	}
	return 0
}

// ResolveBureauCost costo de consulta a centrales en SMLV; el caller lo convierte a COP.
// Bandas cerradas [desde, hasta] en SMLV.
func ResolveBureauCost(p *entity.ParameterSnapshot, amount float64) (float64, bool) {
	if p == nil || p.General.MinimumWage <= 0 {
		return 0, false
	}
	smlv := amount / p.General.MinimumWage
	for _, band := range p.BureauBands {
		if band.Range.ContainsClosed(smlv) {
			return band.CostMinimumWages, true
		}
	}
	return 0, false
}
