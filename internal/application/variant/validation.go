package variant

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator reading the same `binding` tags gin uses,
// reporting JSON field names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks req and converts failures into an INVALID_INPUT domain error
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, err.Error())
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fieldPath(fe), fe.Tag()))
	}
	return shared.NewDomainError(shared.CodeInvalidInput, "Invalid input: "+strings.Join(problems, "; "))
}

// fieldPath drops the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
