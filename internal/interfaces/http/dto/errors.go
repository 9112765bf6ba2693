package dto

import (
	"net/http"

	"github.com/erp/variants/internal/domain/shared"
)

// API error codes. Every code returned to a client starts with ERR_.
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeValidation = "ERR_VALIDATION"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"

	ErrCodeInvalidInput        = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON         = "ERR_INVALID_JSON"
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeInvalidState        = "ERR_INVALID_STATE"
	ErrCodeUnknownDimension    = "ERR_UNKNOWN_DIMENSION"
	ErrCodeTooManyCombinations = "ERR_TOO_MANY_COMBINATIONS"

	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"
)

// statusByCode maps API codes to HTTP statuses. Engine rule violations are 422.
var statusByCode = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeInvalidJSON:         http.StatusBadRequest,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeUnknownDimension:    http.StatusBadRequest,
	ErrCodeTooManyCombinations: http.StatusUnprocessableEntity,

	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
}

// apiCodeByDomainCode translates shared.DomainError codes
var apiCodeByDomainCode = map[string]string{
	shared.CodeNotFound:            ErrCodeNotFound,
	shared.CodeInvalidInput:        ErrCodeInvalidInput,
	shared.CodeInvalidState:        ErrCodeInvalidState,
	shared.CodeUnknownDimension:    ErrCodeUnknownDimension,
	shared.CodeTooManyCombinations: ErrCodeTooManyCombinations,
}

// GetHTTPStatus returns the HTTP status for an API code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode maps a domain code to its API code.
// API codes and unrecognised codes pass through unchanged.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := apiCodeByDomainCode[code]; ok {
		return apiCode
	}
	return code
}
