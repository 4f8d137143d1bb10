package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names so error maps match the payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	registerNullable(v)

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

func ValidateStruct(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = getErrorMessage(fe)
			}
		}
		return fields
	}

	fields["non_field_errors"] = err.Error()
	return fields
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", err.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s.", options)
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "latitude":
		return "Enter a valid latitude."
	case "longitude":
		return "Enter a valid longitude."
	default:
		return fmt.Sprintf("Invalid %s field.", err.Field())
	}
}

// formats validation errors map into single string, sorted by field
func FormatValidationErrors(errors map[string]string) string {
	keys := make([]string, 0, len(errors))
	for field := range errors {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, field := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
