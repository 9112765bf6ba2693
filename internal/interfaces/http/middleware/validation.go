package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/erp/variants/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// messages for validator tags. %s is replaced by the tag parameter.
var ruleMessages = map[string]string{
	"required": "This field is required",
	"oneof":    "Must be one of: %s",
	"gt":       "Must be greater than %s",
	"gte":      "Must be greater than or equal to %s",
	"lt":       "Must be less than %s",
	"lte":      "Must be less than or equal to %s",
	"url":      "Invalid URL format",
	"dive":     "Invalid list element",
}

// SetupValidator makes gin's binding validator report JSON field names
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		name, _, _ = strings.Cut(f.Tag.Get("form"), ",")
	}
	return name
}

// FormatValidationErrors turns a binding error into an error envelope.
// Malformed JSON yields ERR_INVALID_JSON. Type mismatches and rule failures
// yield ERR_VALIDATION with one detail per field.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		fieldErrs validator.ValidationErrors
	)
	var details []dto.ValidationDetail

	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Request body is not valid JSON", requestID)
	case errors.As(err, &typeErr):
		details = append(details, dto.ValidationDetail{
			Field:   typeErr.Field,
			Message: "Must be of type " + typeErr.Type.String(),
		})
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			details = append(details, dto.ValidationDetail{Field: fieldPath(fe), Message: describeRule(fe)})
		}
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError writes a 400 validation error response
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

// fieldPath drops the root struct name from the namespace, leaving e.g. "pricing.mode"
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "Must be at least " + fe.Param() + sizeUnit(fe.Kind())
	case "max":
		return "Must be at most " + fe.Param() + sizeUnit(fe.Kind())
	}

	msg, ok := ruleMessages[fe.Tag()]
	if !ok {
		return "Invalid value"
	}
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fe.Param())
	}
	return msg
}

func sizeUnit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
