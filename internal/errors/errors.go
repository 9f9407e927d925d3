package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the engine and the host adapter
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrSystem           = new(ErrCodeSystemError, "system error")
	// classes in precedence order, an error carrying several marks takes the first.
	// A system mark wraps whatever failed during startup, so it comes first.
	errorClasses = []errorClass{
		{sentinel: ErrSystem, exitCode: ExitCodeSystem},
		{sentinel: ErrInvalidOperation, exitCode: ExitCodeInvalidInput},
		{sentinel: ErrValidation, exitCode: ExitCodeInvalidInput},
		{sentinel: ErrNotFound, exitCode: ExitCodeInvalidInput},
	}
)

type errorClass struct {
	sentinel *InternalError
	exitCode int
}

// classify returns the class of err, false when err carries no sentinel mark
func classify(err error) (errorClass, bool) {
	for _, class := range errorClasses {
		if errors.Is(err, class.sentinel) {
			return class, true
		}
	}
	return errorClass{}, false
}

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
)

const (
	ExitCodeOK           = 0
	ExitCodeSystem       = 1
	ExitCodeInvalidInput = 2
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// ExitCodeFromErr resolves the process exit code for an error returned by a run.
func ExitCodeFromErr(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	if class, ok := classify(err); ok {
		return class.exitCode
	}
	return ExitCodeSystem
}

// HintsFromErr returns the user facing hints attached along the error chain.
func HintsFromErr(err error) []string {
	return errors.GetAllHints(err)
}
