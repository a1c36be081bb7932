package utils

import (
	"errors"
	"reflect"
	"strings"

	"travelapi/internal/domain"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidEmail  = "Invalid email address"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// IsValidEmail checks address syntax only, not deliverability.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidateRequest runs the `validate` tags of v. Missing fields win over
// format problems so callers get the same message for any absent field.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.InternalError{Msg: "validate request", Err: err}
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.ValidationError{Field: fe.Field(), Msg: MsgMissingFields, Err: err}
		}
	}

	fe := fieldErrs[0]
	if fe.Tag() == "email" {
		return domain.ValidationError{Field: fe.Field(), Msg: MsgInvalidEmail, Err: err}
	}
	return domain.ValidationError{Field: fe.Field(), Err: err}
}
