package shared

import "fmt"

// Error codes raised at the application boundary
const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidState        = "INVALID_STATE"
	CodeUnknownDimension    = "UNKNOWN_DIMENSION"
	CodeTooManyCombinations = "TOO_MANY_COMBINATIONS"
)

// DomainError is an error carrying a stable machine-readable code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError with the same code, so errors.Is works against
// the sentinels below regardless of message
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a domain error with a formatted message
func Errorf(code, format string, args ...any) *DomainError {
	return NewDomainError(code, fmt.Sprintf(format, args...))
}

var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrUnknownDimension    = NewDomainError(CodeUnknownDimension, "Attribute dimension is not registered")
	ErrTooManyCombinations = NewDomainError(CodeTooManyCombinations, "Selection produces more variants than allowed")
)
