package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tickit/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// wireName reports struct fields by their json (or form) name so error detail matches the payload.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// BindError turns a gin binding failure into a ValidationError with one entry per field.
func BindError(err error) *booking.ValidationError {
	verr := &booking.ValidationError{}

	var ves validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &ves):
		for _, fe := range ves {
			verr.Add(fieldPath(fe), describe(fe))
		}
	case errors.As(err, &typeErr):
		verr.Add(typeErr.Field, fmt.Sprintf("Expected %s", typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		verr.Add("body", "Malformed JSON")
	default:
		verr.Add("body", err.Error())
	}
	return verr
}

// fieldPath drops the top-level struct name from the namespace: CreateBookingRequest.addOns[0] -> addOns[0].
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at most %s items or characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("Must match the format %s", fe.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return fmt.Sprintf("Failed the %q check", fe.Tag())
	}
}
