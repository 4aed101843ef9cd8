// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed validation rule.
type FieldError struct {
	field   string
	tag     string
	param   string
	value   any
	message string
}

// Field returns the namespaced field that failed validation
// (for example "Config.Server.Port").
func (e *FieldError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "65535" for "max=65535").
func (e *FieldError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *FieldError) Value() any {
	return e.value
}

// Error returns a human-readable error message.
func (e *FieldError) Error() string {
	return e.message
}

// Error is the collection of rule failures for one struct.
type Error struct {
	errors []FieldError
}

// Errors returns the individual failures.
func (ve *Error) Errors() []FieldError {
	return ve.errors
}

// Error joins all messages with "; ".
func (ve *Error) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].Error())
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance. It is safe for
// concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("cors_origin", validateCORSOrigin)
	})

	return validate
}

// ValidateStruct validates s. It returns nil when every rule passes and an
// *Error otherwise.
func ValidateStruct(s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &Error{errors: []FieldError{{field: "unknown", tag: "unknown", message: err.Error()}}}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   trimRootNamespace(fieldErr.Namespace()),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}
	return &Error{errors: fieldErrors}
}

// validateCORSOrigin accepts "*" or an absolute http(s) origin without a path.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()
	if origin == "*" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && (u.Path == "" || u.Path == "/")
}

// trimRootNamespace drops the top-level struct name: "Config.Server.Port"
// becomes "Server.Port".
func trimRootNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":         "%s is required",
	"cors_origin":      "%s must be \"*\" or an http(s) origin",
	"hostname_rfc1123": "%s must be a valid hostname",
	"ip":               "%s must be a valid IP address",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof":       "%s must be one of: %s",
	"required_if": "%s is required when %s",
	"gte":         "%s must be greater than or equal to %s",
	"lte":         "%s must be less than or equal to %s",
	"gt":          "%s must be greater than %s",
	"lt":          "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := trimRootNamespace(fe.Namespace())
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind().String() == "string"

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
