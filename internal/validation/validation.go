package validation

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
	// report json names so messages match the payload the caller saw
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldError describes one failed rule on one field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error is returned when a struct fails its validate tags.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed validation: %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("field '%s' failed validation: %s", f.Field, f.Rule))
	}
	return strings.Join(msgs, "; ")
}

// Struct validates s using its validate tags.
func Struct(s any) error {
	if s == nil {
		return nil
	}

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("validator: expected a struct, got %T", s)
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := &Error{Fields: make([]FieldError, 0, len(ve))}
		for _, fe := range ve {
			out.Fields = append(out.Fields, FieldError{
				Field: fieldPath(fe.Namespace()),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return out
	}
	return fmt.Errorf("validation failed: %w", err)
}

// Each validates every element of items and reports the first failure with its index.
func Each[T any](items []T) error {
	for i := range items {
		if err := Struct(&items[i]); err != nil {
			var ve *Error
			if errors.As(err, &ve) {
				for j := range ve.Fields {
					ve.Fields[j].Field = fmt.Sprintf("[%d].%s", i, ve.Fields[j].Field)
				}
			}
			return err
		}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
