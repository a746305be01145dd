// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package validate checks request payloads before they are sent, so obvious
// mistakes fail fast with the same field-error shape the backend returns on
// a 422. Validation failures are a presentation concern only; they never
// touch session state.
package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their wire name, matching backend errors.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates a payload. On failure it returns an *api.Error shaped
// like a backend 422, so screens render local and remote validation failures
// identically.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]api.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, api.FieldError{
			Loc: []string{"body", fe.Field()},
			Msg: message(fe),
		})
	}
	return &api.Error{Status: 422, Detail: fields}
}

// message maps a failed tag to the backend's phrasing where known.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return "ensure this value has at least " + fe.Param() + " characters"
	case "gt":
		return "ensure this value is greater than " + fe.Param()
	case "gte":
		return "ensure this value is greater than or equal to " + fe.Param()
	case "lte":
		return "ensure this value is less than or equal to " + fe.Param()
	default:
		return "invalid value"
	}
}
