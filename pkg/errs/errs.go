package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies errors by their nature and appropriate handling strategy.
type Category int

const (
	// CategoryUser represents errors caused by invalid caller input.
	// Examples: yanking a type absent from a result, grouping by a column
	// that does not exist. Fixable by changing the request.
	CategoryUser Category = iota

	// CategoryData represents errors raised while computing over column
	// values. Examples: a statistic function returning a malformed result
	// or panicking. These are recorded per cell and never abort a summary.
	CategoryData

	// CategorySystem represents structural failures: a data source that
	// cannot enumerate its columns, an invalid registry state. These abort
	// the whole call.
	CategorySystem
)

// Error codes used across the engine.
const (
	CodeYankNotFound     = "YANK_NOT_FOUND"
	CodeStatisticFailure = "STATISTIC_FAILURE"
	CodeInvalidSource    = "INVALID_SOURCE"
	CodeUnknownGroupCol  = "UNKNOWN_GROUP_COLUMN"
	CodeBadSpec          = "BAD_SPEC"
)

// Error is a structured engine error with context about where it originated.
type Error struct {
	// Code is a unique identifier for this error type (e.g. "YANK_NOT_FOUND").
	Code string

	// Category classifies the error for appropriate handling.
	Category Category

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific instance.
	// Example: "no column of type 'numeric' in result".
	Detail string

	// Operation identifies the operation being performed, e.g. "Skim", "Yank".
	Operation string

	// Component identifies where the error originated, e.g. "Grouper".
	Component string

	// Cause is the underlying error, preserved for errors.Is / errors.As.
	Cause error
}

// New creates a new Error with the specified category, code and message.
func New(category Category, code, message string) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  message,
	}
}

// Wrap wraps an existing error with engine context. If err is already an
// *Error, operation and component are filled in only where unset.
func Wrap(err error, code, operation, component string) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Operation == "" {
			e.Operation = operation
		}
		if e.Component == "" {
			e.Component = component
		}
		return e
	}

	return &Error{
		Code:      code,
		Category:  CategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
	}
}

// WithDetail returns the error with its Detail set.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Error implements the standard error interface.
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HasCode reports whether err is (or wraps) an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}
