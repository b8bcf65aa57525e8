package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout formato de fechas sin hora aceptado en requests (mfd, expiry, hire_date).
const DateLayout = "2006-01-02"
