package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con el límite violado, para que el
// cliente pueda armar su propio mensaje.
type ValidationErrorResponse struct {
	ErrorResponse
	Field string  `json:"field"`
	Kind  string  `json:"kind"`
	Scope string  `json:"scope,omitempty"`
	Bound float64 `json:"bound,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// IdentifierErrorResponse rechazo de cédula para un fondo especial.
type IdentifierErrorResponse struct {
	ErrorResponse
	AuthorizedFund string `json:"authorized_fund,omitempty"`
}
