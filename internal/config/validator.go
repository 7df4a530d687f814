package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the shared validator. Field names in its errors are
// the environment variable names taken from the envconfig tags.
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("envconfig"); name != "" {
				return name
			}
			return f.Name
		})
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError renders validation errors as "VAR: reason" pairs,
// sorted by variable name
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, e.Field()+": "+reason(e))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func reason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return MsgRequired
	case "http_url", "url":
		return MsgInvalidURL
	case "min":
		return fmt.Sprintf(MsgAtLeast, e.Param())
	case "max":
		return fmt.Sprintf(MsgAtMost, e.Param())
	case "oneof":
		return fmt.Sprintf(MsgOneOf, strings.ReplaceAll(e.Param(), " ", ", "))
	case "startswith":
		return fmt.Sprintf(MsgStartsWith, e.Param())
	default:
		return MsgInvalidVal
	}
}
