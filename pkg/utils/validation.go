package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldError describes one rejected field of a request body
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is returned by ValidateStruct when tags reject the input
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	messages := make([]string, len(fe))
	for i, e := range fe {
		messages[i] = e.Field + " " + e.Message
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct checks s against its validate tags
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	fields := make(FieldErrors, len(invalid))
	for i, e := range invalid {
		fields[i] = FieldError{Field: fieldPath(e), Message: describe(e)}
	}
	return fields
}

// fieldPath drops the root struct name: "OfferRequest.customizations[0].name"
// becomes "customizations[0].name"
func fieldPath(e validator.FieldError) string {
	_, path, found := strings.Cut(e.Namespace(), ".")
	if !found {
		return e.Field()
	}
	return path
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "numeric":
		return "must be numeric"
	default:
		return "is invalid"
	}
}
