// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the catalog service layer, before any call to
// the library backend. A failed validation therefore never produces network traffic.
//
// Format rules (email, calendar date) are delegated to go-playground/validator tags;
// the chain only collects their outcome per field.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/librarydesk/internal/platform/apperr"
)

// DateLayout is the calendar date format exchanged with the backend and produced
// by HTML date inputs.
const DateLayout = "2006-01-02"

// engine caches tag parsing and is safe for concurrent use.
var engine = validator.New()

// ErrInvalidForm is returned when a submitted form body cannot be parsed.
var ErrInvalidForm = apperr.ValidationError("Invalid form submission")

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every submission.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Int fails if a non-empty value is not a base-10 integer.
//
// Empty values are left to [Validator.Required] so a missing field reports once.
func (v *Validator) Int(field, value string) *Validator {
	value = strings.TrimSpace(value)
	if value == "" {
		return v
	}
	if _, err := strconv.Atoi(value); err != nil {
		v.add(field, "Must be a whole number")
	}
	return v
}

// NonNegative fails if a non-empty value is an integer below zero.
func (v *Validator) NonNegative(field, value string) *Validator {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err == nil && n < 0 {
		v.add(field, "Must not be negative")
	}
	return v
}

// Date fails if a non-empty value is not a YYYY-MM-DD calendar date.
func (v *Validator) Date(field, value string) *Validator {
	value = strings.TrimSpace(value)
	if value == "" {
		return v
	}
	if err := engine.Var(value, "datetime="+DateLayout); err != nil {
		v.add(field, "Must be a date in YYYY-MM-DD format")
	}
	return v
}

// NotBefore fails if both values are dates and value precedes floor.
//
// Values that do not parse are ignored; pair it with [Validator.Date].
func (v *Validator) NotBefore(field, value, floor string) *Validator {
	at, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return v
	}
	min, err := time.Parse(DateLayout, strings.TrimSpace(floor))
	if err != nil {
		return v
	}
	if at.Before(min) {
		v.add(field, fmt.Sprintf("Must not be earlier than %s", floor))
	}
	return v
}

// MinItems fails if fewer than min non-empty values were selected.
func (v *Validator) MinItems(field string, values []string, min int) *Validator {
	count := 0
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			count++
		}
	}
	if count < min {
		v.add(field, fmt.Sprintf("Select at least %d", min))
	}
	return v
}

// Email fails if a non-empty value is not a bare email address.
func (v *Validator) Email(field, value string) *Validator {
	value = strings.TrimSpace(value)
	if value == "" {
		return v
	}
	if err := engine.Var(value, "email"); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("stock", stock > 1000, "Must be at most 1000")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	return v.ErrMessage("Validation failed")
}

// ErrMessage is [Validator.Err] with a caller-chosen summary message, which is what
// the page shows in its notification banner.
func (v *Validator) ErrMessage(message string) error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(message, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
