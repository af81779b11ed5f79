// Package forms declares the submitted forms and validates them with
// go-playground/validator, translating rule failures into user-facing
// field messages.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its error messages, in display order.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Get(field string) []string {
	return e[field]
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Form is implemented by every submitted form; messages maps "field.tag"
// to the text shown when that rule fails.
type Form interface {
	messages() map[string]string
}

// Validator checks forms against their `validate` tags.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form name, e.g. "first_name"
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns nil when f passes every rule.
func (fv *Validator) Validate(f Form) Errors {
	err := fv.v.Struct(f)
	if err == nil {
		return nil
	}

	errs := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("", err.Error())
		return errs
	}
	msgs := f.messages()
	for _, fe := range verrs {
		msg, ok := msgs[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs.Add(fe.Field(), msg)
	}
	return errs
}
