package dto

// RegionResponse departamento disponible en la parametría.
type RegionResponse struct {
	Name           string `json:"name"`
	Municipalities int    `json:"municipalities"`
}

// MunicipalityResponse municipio con su tipología.
type MunicipalityResponse struct {
	Name     string `json:"name"`
	Typology string `json:"typology"`
}

// ModalityResponse modalidad con sus límites de monto. MaxAmount 0 = sin máximo.
type ModalityResponse struct {
	Code      string  `json:"code"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount,omitempty"`
}

// FrequencyResponse periodicidad de pago del conjunto activo.
type FrequencyResponse struct {
	Name            string `json:"name"`
	MonthsPerPeriod int    `json:"months_per_period"`
}

// GuaranteeProductResponse producto FNG ofrecido para una modalidad.
type GuaranteeProductResponse struct {
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	FeeKind            string   `json:"fee_kind"`
	PaymentTiming      string   `json:"payment_timing"`
	RequiresIdentifier bool     `json:"requires_identifier"`
	AllowedModalities  []string `json:"allowed_modalities"`
	MinAmount          float64  `json:"min_amount,omitempty"`
	MaxAmount          float64  `json:"max_amount,omitempty"`
	MinTermMonths      float64  `json:"min_term_months,omitempty"`
	MaxTermMonths      float64  `json:"max_term_months,omitempty"`
}
