package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/cast"
	"github.com/xy-planning-network/trailhead/params"
)

// castRules names the cast.Type a "cast" rule checks a field against, as in `validate:"cast=float"`.
var castRules = map[string]cast.Type{
	"integer": cast.AsInteger,
	"float":   cast.AsFloat,
	"array":   cast.AsArray,
	"string":  cast.AsString,
	"iso":     cast.AsISO,
	"utf8":    cast.AsUTF8,
	"json":    cast.AsJSON,
}

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator, which applies default configuration.
//
// Fields are named by their "json" tag, then their "schema" tag,
// then by the canonical parameter key of their Go name.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterValidation("cast", validateCastable)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}

			if name != "" {
				return name
			}
		}

		return params.Canonical(field.Name)
	})

	return validator{v}
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var validateErrs ValidationErrors
	for _, ve := range errs {
		field := ve.Namespace()

		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		rule := ve.Tag()
		if ve.Param() != "" {
			rule += "=" + ve.Param()
		}
		rule += "; " + ve.Type().String()

		got := ve.Value()
		if trailhead.IsMasked(ve.Field()) {
			got = trailhead.LogMaskVal
		}

		validateErrs = append(validateErrs, ValidationError{
			Field: field,
			Got:   got,
			Rule:  rule,
		})
	}

	return validateErrs
}

// validateEnumerable validates whether field is a valid Enumerable or slice of valid Enumerable.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() == reflect.Slice {
		vals := []reflect.Value{}
		for i := 0; i < field.Len(); i++ {
			vals = append(vals, field.Index(i))
		}

		return checkEnums(vals...)
	}

	return checkEnums(field)
}

// checkEnums asserts each [reflect.Value] is an Enumerable and valid.
func checkEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		enum, ok := item.Interface().(trailhead.Enumerable)
		if !ok || enum.Valid() != nil {
			return false
		}
	}

	return true
}

// validateCastable validates whether a field's value can be cast as the cast.Type the rule's param names.
// An unknown param never validates.
func validateCastable(fl v10.FieldLevel) bool {
	t, ok := castRules[fl.Param()]
	if !ok {
		return false
	}

	_, err := cast.New().Cast(t, fl.Field().Interface())
	return err == nil
}
