// Package validation provides common validation utilities for the bufkit library.
package validation

import (
	"reflect"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return bkerrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that an integer value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value int) error {
	if value < 0 {
		return bkerrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil, including a
// nil pointer, func, map, slice or channel stored in a non-nil interface.
// Returns a ValidationError if the value is nil.
func ValidateNotNil(module, field string, value interface{}) error {
	if isNil(value) {
		return bkerrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return bkerrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// MustPositive panics with a ValidationError if value is not positive.
func MustPositive(module, field string, value int) {
	if err := ValidatePositive(module, field, value); err != nil {
		panic(err)
	}
}

// MustNonNegative panics with a ValidationError if value is negative.
func MustNonNegative(module, field string, value int) {
	if err := ValidateNonNegative(module, field, value); err != nil {
		panic(err)
	}
}

// MustNotNil panics with a ValidationError if value is nil.
func MustNotNil(module, field string, value interface{}) {
	if err := ValidateNotNil(module, field, value); err != nil {
		panic(err)
	}
}

// MustNotEmpty panics with a ValidationError if value is empty.
func MustNotEmpty(module, field string, value string) {
	if err := ValidateNotEmpty(module, field, value); err != nil {
		panic(err)
	}
}
