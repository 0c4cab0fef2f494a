package errors

import (
	"errors"
	"fmt"
)

// Code categorizes a generation failure
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeConfiguration indicates missing or invalid configuration, such as the output directory
	CodeConfiguration Code = "configuration"

	// CodeLookup indicates a category/rarity/tier combination is absent from a table
	CodeLookup Code = "lookup"

	// CodeOutOfRange indicates a formula produced an empty or inverted range,
	// or a level is outside the supported domain
	CodeOutOfRange Code = "out_of_range"

	// CodeCollision indicates two attribute combinations produced the same identifier
	CodeCollision Code = "collision"
)

// Error represents a generator error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context (id, level, rarity, ...)
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of an already coded error
	var genErr *Error
	if errors.As(err, &genErr) {
		return &Error{
			Code:    genErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(genErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Configurationf creates a formatted configuration error
func Configurationf(format string, args ...any) *Error {
	return Newf(CodeConfiguration, format, args...)
}

// Lookupf creates a formatted lookup error
func Lookupf(format string, args ...any) *Error {
	return Newf(CodeLookup, format, args...)
}

// OutOfRangef creates a formatted range error
func OutOfRangef(format string, args ...any) *Error {
	return Newf(CodeOutOfRange, format, args...)
}

// Collisionf creates a formatted collision error
func Collisionf(format string, args ...any) *Error {
	return Newf(CodeCollision, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Code == code
	}
	return false
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return Is(err, CodeConfiguration)
}

// IsLookup checks if the error is a lookup error
func IsLookup(err error) bool {
	return Is(err, CodeLookup)
}

// IsOutOfRange checks if the error is a range error
func IsOutOfRange(err error) bool {
	return Is(err, CodeOutOfRange)
}

// IsCollision checks if the error is a collision error
func IsCollision(err error) bool {
	return Is(err, CodeCollision)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
