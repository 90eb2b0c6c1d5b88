package dto

import (
	"net/http"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
)

// statusByCode maps domain error codes to HTTP status codes.
var statusByCode = map[string]int{
	shared.ErrCodeNotFound:          http.StatusNotFound,
	shared.ErrCodeAlreadyExists:     http.StatusConflict,
	shared.ErrCodeInvalidInput:      http.StatusBadRequest,
	shared.ErrCodeInvalidDateFormat: http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
