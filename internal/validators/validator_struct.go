// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagPathPrefix validates a URL path prefix: empty, or starting with "/" and
// not ending with "/".
const TagPathPrefix = "pathprefix"

// StructValidator validates structs using `validate` struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] with the package's custom tags
// registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerCustomValidations(v)

	return &StructValidator{validate: v}
}

func registerCustomValidations(v *validator.Validate) {
	if err := v.RegisterValidation(TagPathPrefix, validatePathPrefix); err != nil {
		panic("validators: failed to register pathprefix validation: " + err.Error())
	}
}

func validatePathPrefix(fl validator.FieldLevel) bool {
	prefix := fl.Field().String()
	if prefix == "" {
		return true
	}

	return strings.HasPrefix(prefix, "/") && !strings.HasSuffix(prefix, "/") && !strings.ContainsAny(prefix, " ?#")
}

func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	typ := reflect.TypeOf(obj)
	if typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		for _, field := range fields {
			if _, ok := typ.FieldByName(field); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fieldErrs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, &FieldError{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}

	return fmt.Errorf("%w: %w", ErrValidation, errors.Join(fieldErrs...))
}
