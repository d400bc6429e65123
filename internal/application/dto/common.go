package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION"`
	Message string `json:"message"`
}
