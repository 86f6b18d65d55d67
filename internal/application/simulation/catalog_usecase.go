package simulation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/domain"
	"github.com/jhoicas/simulador-creditos/internal/domain/credit"
	"github.com/jhoicas/simulador-creditos/internal/domain/entity"
)

// CatalogUseCase expone los catálogos de la parametría que la interfaz usa para armar
// el formulario: ubicaciones, modalidades, periodicidades y productos FNG por modalidad.
type CatalogUseCase struct {
	params *entity.ParameterSnapshot
}

// NewCatalogUseCase construye el caso de uso sobre la parametría cargada.
func NewCatalogUseCase(params *entity.ParameterSnapshot) *CatalogUseCase {
	return &CatalogUseCase{params: params}
}

// Regions lista los departamentos en orden alfabético.
func (uc *CatalogUseCase) Regions() []dto.RegionResponse {
	out := make([]dto.RegionResponse, 0, len(uc.params.Locations))
	for name, municipalities := range uc.params.Locations {
		out = append(out, dto.RegionResponse{Name: name, Municipalities: len(municipalities)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Municipalities lista los municipios de un departamento con su tipología.
// Devuelve domain.ErrNotFound si el departamento no existe.
func (uc *CatalogUseCase) Municipalities(region string) ([]dto.MunicipalityResponse, error) {
	municipalities, ok := uc.params.Locations[region]
	if !ok {
		return nil, fmt.Errorf("%w: departamento %s", domain.ErrNotFound, region)
	}
	out := make([]dto.MunicipalityResponse, 0, len(municipalities))
	for name, typology := range municipalities {
		out = append(out, dto.MunicipalityResponse{Name: name, Typology: typology})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Modalities lista las modalidades con restricciones de monto.
func (uc *CatalogUseCase) Modalities() []dto.ModalityResponse {
	out := make([]dto.ModalityResponse, 0, len(uc.params.ModalityConstraints))
	for code, c := range uc.params.ModalityConstraints {
		out = append(out, dto.ModalityResponse{Code: code, MinAmount: c.Amount.Min, MaxAmount: c.Amount.Max})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Frequencies lista el conjunto de periodicidades activo, de la más corta a la más larga.
func (uc *CatalogUseCase) Frequencies() []dto.FrequencyResponse {
	out := make([]dto.FrequencyResponse, 0, len(uc.params.General.PaymentFrequencies))
	for name, months := range uc.params.General.PaymentFrequencies {
		out = append(out, dto.FrequencyResponse{Name: name, MonthsPerPeriod: months})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MonthsPerPeriod != out[j].MonthsPerPeriod {
			return out[i].MonthsPerPeriod < out[j].MonthsPerPeriod
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// GuaranteeProducts lista los productos FNG. Con modality no vacía filtra por modalidades permitidas.
func (uc *CatalogUseCase) GuaranteeProducts(modality string) []dto.GuaranteeProductResponse {
	modality = strings.ToUpper(strings.TrimSpace(modality))
	out := make([]dto.GuaranteeProductResponse, 0, len(uc.params.GuaranteeProducts))
	for _, p := range uc.params.GuaranteeProducts {
		if modality != "" && !p.AllowsModality(modality) {
			continue
		}
		item := dto.GuaranteeProductResponse{
			Code:               p.Code,
			Name:               p.Name,
			FeeKind:            p.FeeKind,
			PaymentTiming:      string(credit.GuaranteeTiming(p)),
			RequiresIdentifier: p.RequiresIdentifier,
			AllowedModalities:  p.AllowedModalities,
		}
		if p.AmountBounds != nil {
			item.MinAmount, item.MaxAmount = p.AmountBounds.Min, p.AmountBounds.Max
		}
		if p.TermBounds != nil {
			item.MinTermMonths, item.MaxTermMonths = p.TermBounds.Min, p.TermBounds.Max
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
