// Package parametria carga el documento de parametría (YAML o JSON) y lo convierte en un
// entity.ParameterSnapshot inmutable. La forma del documento se valida una sola vez, al cargar:
// un selector de tipos desconocido o un tipo de comisión no soportado detienen el arranque.
package parametria

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// bogota zona horaria de la fecha de vigencia de cédulas (Colombia no usa horario de verano).
var bogota = time.FixedZone("COT", -5*60*60)

// LoadFile lee y valida el archivo de parametría.
func LoadFile(path string) (*entity.ParameterSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parametria: leer %s: %w", path, err)
	}
	snapshot, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parametria: %s: %w", path, err)
	}
	return snapshot, nil
}

// Parse decodifica el documento y valida su estructura.
// Los errores de validación se devuelven agrupados con errors.Join.
func Parse(data []byte) (*entity.ParameterSnapshot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	var errs []error
	snapshot := &entity.ParameterSnapshot{
		Version:             doc.Version,
		InterestRates:       make(map[string][]entity.RateBand, len(doc.TasasInteres)),
		GuaranteeProducts:   make(map[string]entity.GuaranteeProduct, len(doc.ProductosFNG)),
		ModalityConstraints: make(map[string]entity.ModalityConstraint, len(doc.Modalidades)),
		Locations:           make(map[string]map[string]string, len(doc.Ubicaciones)),
	}

	general, err := convertGeneral(doc.ConfiguracionGeneral)
	if err != nil {
		errs = append(errs, err)
	}
	snapshot.General = general

	for modality, table := range doc.TasasInteres {
		bands := make([]entity.RateBand, 0, len(table.Rangos))
		for i, raw := range table.Rangos {
			band, err := convertRateBand(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("tasasInteres.%s.rangos[%d]: %w", modality, i, err))
				continue
			}
			bands = append(bands, band)
		}
		snapshot.InterestRates[modality] = bands
	}

	for code, raw := range doc.ProductosFNG {
		product, err := convertProduct(code, raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("productosFNG.%s: %w", code, err))
			continue
		}
		snapshot.GuaranteeProducts[code] = product
	}

	for i, raw := range doc.LeyMipyme.RangosSMLV {
		r, err := convertRange(raw.Desde, raw.Hasta)
		if err != nil {
			errs = append(errs, fmt.Errorf("leyMipyme.rangosSMLV[%d]: %w", i, err))
			continue
		}
		snapshot.MipymeBands = append(snapshot.MipymeBands, entity.MipymeBand{Range: r, Commission: raw.Comision})
	}

	for i, raw := range doc.ConsultaCentrales.RangosCredito {
		r, err := convertRange(raw.Desde, raw.Hasta)
		if err != nil {
			errs = append(errs, fmt.Errorf("consultaCentrales.rangosCredito[%d]: %w", i, err))
			continue
		}
		snapshot.BureauBands = append(snapshot.BureauBands, entity.BureauBand{Range: r, CostMinimumWages: raw.ValorSMLV})
	}

	for modality, raw := range doc.Modalidades {
		if raw.Montos.Maximo > 0 && raw.Montos.Minimo > raw.Montos.Maximo {
			errs = append(errs, fmt.Errorf("modalidades.%s.montos: mínimo mayor que máximo", modality))
			continue
		}
		snapshot.ModalityConstraints[modality] = entity.ModalityConstraint{
			Amount: entity.Bounds{Min: raw.Montos.Minimo, Max: raw.Montos.Maximo},
		}
	}

	for region, municipalities := range doc.Ubicaciones {
		m := make(map[string]string, len(municipalities))
		for municipality, typology := range municipalities {
			t := strings.ToUpper(strings.TrimSpace(typology))
			if t != entity.TypologyRural && t != entity.TypologyUrban {
				errs = append(errs, fmt.Errorf("ubicaciones.%s.%s: tipología %q no soportada", region, municipality, typology))
				continue
			}
			m[municipality] = t
		}
		snapshot.Locations[region] = m
	}

	fund, err := convertSpecialFund(doc.CedulasPermitidas, doc.ProductosFNG)
	if err != nil {
		errs = append(errs, err)
	}
	snapshot.SpecialFund = fund

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{domain.ErrInvalidConfig}, errs...)...)
	}
	return snapshot, nil
}

func convertGeneral(raw generalDoc) (entity.GeneralConfig, error) {
	g := entity.GeneralConfig{
		MinimumWage:                  raw.SalarioMinimo,
		MinimumTermMonths:            raw.PlazoMinimo,
		MaximumTermMonths:            raw.PlazoMaximo,
		VAT:                          raw.IVA,
		LifeInsuranceRatePerThousand: raw.SeguroVida.TasaPorMil,
		PaymentFrequencies:           raw.ModalidadesPago,
	}
	var errs []error
	if g.MinimumWage <= 0 {
		errs = append(errs, errors.New("configuracionGeneral.salarioMinimo debe ser positivo"))
	}
	if g.MaximumTermMonths <= 0 {
		errs = append(errs, errors.New("configuracionGeneral.plazoMaximo debe ser positivo"))
	} else if g.MaximumTermMonths < g.MinimumTermMonths {
		errs = append(errs, errors.New("configuracionGeneral.plazoMaximo no puede ser menor que plazoMinimo"))
	}
	if g.VAT < 0 {
		errs = append(errs, errors.New("configuracionGeneral.iva no puede ser negativo"))
	}
	if len(g.PaymentFrequencies) == 0 {
		errs = append(errs, errors.New("configuracionGeneral.modalidadesPago es obligatorio"))
	}
	for name, months := range g.PaymentFrequencies {
		if months <= 0 {
			errs = append(errs, fmt.Errorf("configuracionGeneral.modalidadesPago.%s: meses por periodo debe ser positivo", name))
		}
	}
	return g, errors.Join(errs...)
}

func convertRange(desde float64, hasta *float64) (entity.Range, error) {
	if hasta != nil && *hasta < desde {
		return entity.Range{}, fmt.Errorf("rango inválido: desde %v > hasta %v", desde, *hasta)
	}
	return entity.Range{From: desde, To: hasta}, nil
}

func convertRates(r ratesDoc) entity.Rates {
	return entity.Rates{Monthly: r.MV, AnnualEffective: r.EA}
}

func convertRateBand(raw rateBandDoc) (entity.RateBand, error) {
	r, err := convertRange(raw.Rango.Desde, raw.Rango.Hasta)
	if err != nil {
		return entity.RateBand{}, err
	}
	matcher, err := decodeMatcher(&raw.Tipos)
	if err != nil {
		return entity.RateBand{}, err
	}
	band := entity.RateBand{Amount: r, Matcher: matcher}
	if matcher.Kind != entity.MatcherKeyed {
		if raw.Tasas == nil {
			return entity.RateBand{}, errors.New("tasas es obligatorio cuando tipos es lista o texto")
		}
		band.Rates = convertRates(*raw.Tasas)
	}
	return band, nil
}

// decodeMatcher reconoce las tres formas de "tipos" presentes en la parametría.
func decodeMatcher(n *yaml.Node) (entity.TypeMatcher, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		var tags []string
		if err := n.Decode(&tags); err != nil {
			return entity.TypeMatcher{}, fmt.Errorf("tipos (lista): %w", err)
		}
		if len(tags) == 0 {
			return entity.TypeMatcher{}, errors.New("tipos: lista vacía")
		}
		return entity.TypeMatcher{Kind: entity.MatcherTagList, Tags: tags}, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" || strings.TrimSpace(n.Value) == "" {
			return entity.TypeMatcher{}, errors.New("tipos: valor vacío")
		}
		return entity.TypeMatcher{Kind: entity.MatcherSingleTag, Tag: n.Value}, nil
	case yaml.MappingNode:
		var keyed map[string]ratesDoc
		if err := n.Decode(&keyed); err != nil {
			return entity.TypeMatcher{}, fmt.Errorf("tipos (mapa): %w", err)
		}
		if len(keyed) == 0 {
			return entity.TypeMatcher{}, errors.New("tipos: mapa vacío")
		}
		m := entity.TypeMatcher{Kind: entity.MatcherKeyed, Keyed: make(map[string]entity.Rates, len(keyed))}
		for tag, rates := range keyed {
			m.Keyed[tag] = convertRates(rates)
		}
		return m, nil
	case 0:
		return entity.TypeMatcher{}, errors.New("tipos es obligatorio")
	default:
		return entity.TypeMatcher{}, fmt.Errorf("tipos: forma no soportada en línea %d", n.Line)
	}
}

func convertProduct(code string, raw productDoc) (entity.GuaranteeProduct, error) {
	p := entity.GuaranteeProduct{
		Code:               code,
		Name:               raw.Nombre,
		FeeKind:            raw.TipoComision,
		MonthlyFeeRate:     raw.ComisionMensual,
		AllowedModalities:  raw.ModalidadesPermitidas,
		PaymentTiming:      entity.PaymentTiming(strings.ToUpper(strings.TrimSpace(raw.FormaPago))),
		RequiresIdentifier: raw.RequiereCedula,
	}
	if p.Name == "" {
		p.Name = code
	}

	switch p.FeeKind {
	case entity.FeeKindBalanceMonthly:
		if p.MonthlyFeeRate <= 0 {
			return p, errors.New("comisionMensual es obligatoria para MENSUAL_SOBRE_SALDO")
		}
	case entity.FeeKindFlatByTerm, entity.FeeKindSingleUpfront:
		p.FeeByTerm = make(map[int]float64, len(raw.ComisionesPorPlazo))
		for k, v := range raw.ComisionesPorPlazo {
			months, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil || months <= 0 {
				return p, fmt.Errorf("comisionesPorPlazo: plazo %q no es un número de meses", k)
			}
			p.FeeByTerm[months] = v
		}
	default:
		return p, fmt.Errorf("tipoComision %q no soportado", raw.TipoComision)
	}

	switch p.PaymentTiming {
	case "", entity.TimingUpfront, entity.TimingDeferred:
	default:
		return p, fmt.Errorf("formaPago %q no soportada", raw.FormaPago)
	}

	if raw.Montos != nil {
		p.AmountBounds = &entity.Bounds{Min: raw.Montos.Minimo, Max: raw.Montos.Maximo}
	}
	if raw.Plazos != nil {
		p.TermBounds = &entity.Bounds{Min: raw.Plazos.Minimo, Max: raw.Plazos.Maximo}
	}
	sort.Strings(p.AllowedModalities)
	return p, nil
}

func convertSpecialFund(raw specialFundDoc, products map[string]productDoc) (entity.SpecialFund, error) {
	fund := entity.SpecialFund{Identifiers: make(map[string]string, len(raw.Cedulas))}
	var errs []error

	if v := strings.TrimSpace(raw.VigenciaHasta); v != "" {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("cedulasPermitidas.vigenciaHasta: %w", err))
		}
		fund.ValidUntil = t
	} else if len(raw.Cedulas) > 0 {
		errs = append(errs, errors.New("cedulasPermitidas.vigenciaHasta es obligatoria cuando hay cédulas"))
	}

	for id, c := range raw.Cedulas {
		if _, ok := products[c.Fondo]; !ok {
			errs = append(errs, fmt.Errorf("cedulasPermitidas.cedulas.%s: fondo %q no existe en productosFNG", id, c.Fondo))
			continue
		}
		fund.Identifiers[credit.NormalizeIdentifier(id)] = c.Fondo
	}
	return fund, errors.Join(errs...)
}

// parseDate acepta fecha (2006-01-02) o fecha-hora RFC 3339.
func parseDate(v string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", v, bogota); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
