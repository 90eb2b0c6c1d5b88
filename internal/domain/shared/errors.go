package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Domain error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInvalidDateFormat = "INVALID_DATE_FORMAT"
)

// Common domain errors
var (
	ErrNotFound          = NewDomainError(ErrCodeNotFound, "Resource not found")
	ErrAlreadyExists     = NewDomainError(ErrCodeAlreadyExists, "Resource already exists")
	ErrInvalidInput      = NewDomainError(ErrCodeInvalidInput, "Invalid input provided")
	ErrInvalidDateFormat = NewDomainError(ErrCodeInvalidDateFormat, "Invalid date format")
)
