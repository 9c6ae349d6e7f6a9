package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the bufkit library

var (
	// ErrNoData indicates that a source was exhausted before the requested
	// number of bytes could be collected.
	ErrNoData = errors.New("insufficient data")

	// ErrTimeout indicates that a transport operation stalled without completing
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidConfiguration indicates invalid configuration parameters or arguments
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrContractViolation indicates that a Source or Sink returned a result
	// outside of its documented contract.
	ErrContractViolation = errors.New("contract violation")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsTemporary returns true if the error indicates a temporary condition
func IsTemporary(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNoData)
}

// ValidationError describes an invalid argument or configuration value.
// Buffered components panic with a *ValidationError when called with
// arguments that indicate a bug in the calling code.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same instance.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// ContractError describes a Source or Sink result that breaks the capability
// contract, such as a sink reporting more bytes written than it was given.
type ContractError struct {
	Module     string
	Capability string
	Reason     string
	Got        int
	Limit      int
}

// NewContractError creates a ContractError.
func NewContractError(module, capability, reason string, got, limit int) *ContractError {
	return &ContractError{
		Module:     module,
		Capability: capability,
		Reason:     reason,
		Got:        got,
		Limit:      limit,
	}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s contract violation: %s (got %d, limit %d)",
		e.Module, e.Capability, e.Reason, e.Got, e.Limit)
}

// Unwrap returns ErrContractViolation.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

// IsContractError reports whether err is or wraps a *ContractError.
func IsContractError(err error) bool {
	var cerr *ContractError
	return errors.As(err, &cerr)
}

// OperationError annotates a failure of a named operation.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError without context.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches additional detail and returns the same instance.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
