// Package validation applies the required-field contract to decoded request
// payloads. Rules live in `validate` struct tags; handlers only see the
// Policy interface, so a stricter rule set can be swapped in without
// touching handler logic.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Policy validates a decoded request payload.
type Policy interface {
	Validate(payload any) error
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Error aggregates the field errors of one payload and satisfies error.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// RequiredFields is the default policy: it enforces field presence and
// nothing else. Zero values submitted explicitly (price 0, empty strings,
// empty item arrays) pass; payload types use pointer fields to make that
// distinction decodable.
type RequiredFields struct {
	validate *validator.Validate
}

// NewRequiredFields creates the default validation policy.
func NewRequiredFields() *RequiredFields {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, not Go struct field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequiredFields{validate: v}
}

// Validate checks payload against its struct tags and returns an *Error
// listing every missing field.
func (p *RequiredFields) Validate(payload any) error {
	err := p.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: "is required"})
	}
	return &Error{Fields: fields}
}
