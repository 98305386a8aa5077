package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// numeric_id accepts a json.RawMessage holding a number or numeric string
	_ = v.RegisterValidation("numeric_id", func(fl validator.FieldLevel) bool {
		raw, ok := fl.Field().Interface().(json.RawMessage)
		if !ok {
			return false
		}
		_, ok = ParseNumericID(raw)
		return ok
	})

	// no_nul rejects strings holding a NUL byte, which TEXT columns cannot store
	_ = v.RegisterValidation("no_nul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})

	return v
}

// InvalidField validates v against its `validate` tags and returns the JSON
// name of the first failing field in declaration order, or "" when v is valid.
func InvalidField(v any) (string, error) {
	err := validate.Struct(v)
	if err == nil {
		return "", nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Field(), nil
	}
	return "", err
}
