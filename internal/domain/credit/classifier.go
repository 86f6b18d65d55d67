// Package credit contiene el motor de simulación de créditos: clasificación del tipo
// de crédito, resolución de tasas y comisiones sobre la parametría, validaciones y la
// tabla de amortización. Todas las funciones son puras: dependen solo de la parametría
// y de la solicitud recibidas, no registran logs ni guardan estado entre llamadas.
package credit

import "github.com/jhoicas/simulador-creditos/internal/domain/entity"

// Umbrales de microcrédito en SMLV (inclusivos).
const (
	popularMaxSMLV    = 6
	productiveMaxSMLV = 25
)

// CreditTypeHighAmount tipo de microcrédito por encima de 25 SMLV, sin tipología.
const CreditTypeHighAmount = "PRODUCTIVO_MAYOR_MONTO"

// ClassifyCreditType determina el tipo de crédito que indexa la tabla de tasas.
// Devuelve "" cuando no se puede clasificar; el caller no debe continuar.
func ClassifyCreditType(p *entity.ParameterSnapshot, amount float64, modality, typology string) string {
	if p == nil || amount <= 0 || typology == "" {
		return ""
	}
	switch modality {
	case entity.ModalityMicrocredit:
		if p.General.MinimumWage <= 0 {
			return ""
		}
		smlv := amount / p.General.MinimumWage
		switch {
		case smlv <= popularMaxSMLV:
			return "POPULAR_" + typology
		case smlv <= productiveMaxSMLV:
			return "PRODUCTIVO_" + typology
		default:
			return CreditTypeHighAmount
		}
	case entity.ModalityCommercial, entity.ModalityConsumer, entity.ModalityVehicle:
		return modality
	case entity.ModalityVictimsLaw:
		return entity.ModalityConsumer
	default:
		return ""
	}
}
