package dto

// ErrorResponse is the error payload of the API. Report and dashboard
// payloads are returned bare, so errors carry a single message field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
