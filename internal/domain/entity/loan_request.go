package entity

// LoanRequest datos de una simulación. Es transitoria: se construye por cada cálculo.
type LoanRequest struct {
	Amount           float64 // monto solicitado en COP
	TermCount        int     // número de periodos
	PaymentFrequency string  // nombre de la periodicidad (ej. "Mensual")
	Modality         string
	GuaranteeProduct string // código FNG; vacío si no aplica
	Identifier       string // cédula, solo para productos restringidos
	Region           string
	Municipality     string
	MipymeTiming     PaymentTiming
}
