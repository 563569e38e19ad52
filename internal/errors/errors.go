// Package errors provides unified error handling for the prompt-workbench
// core. Every failure carries a code plus enough structured detail (names,
// paths, violation lists) for the caller to render a precise message; the
// core never surfaces a bare "something went wrong".
//
// Not-found lookups at the workspace facade are normal empty results, not
// errors; ErrCodeNotFound exists for callers (CLI, service) that need to
// report a miss to a user. Nothing here is retryable: all failures are
// local and deterministic.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies the kind of failure.
type ErrorCode string

const (
	// ErrCodeConfig marks a malformed or missing workspace config document.
	// Fatal to any operation that needs config.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeInvalidTemplate marks delimiter mismatches or invalid
	// placeholders. The Details list carries every violation found.
	ErrCodeInvalidTemplate ErrorCode = "INVALID_TEMPLATE"

	// ErrCodeMissingVariable is raised by strict resolution only; Details
	// lists every missing name, not just the first.
	ErrCodeMissingVariable ErrorCode = "MISSING_VARIABLE"

	// ErrCodeFileNotFound / ErrCodeReadFailure cover file-backed variable
	// resolution.
	ErrCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrCodeReadFailure  ErrorCode = "READ_ERROR"

	// ErrCodeNotFound is a lookup miss for a name.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError is the standard structured error for the core.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
	Path    string    `json:"path,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithPath attaches the file path the failure relates to.
func (e *AppError) WithPath(path string) *AppError {
	e.Path = path
	return e
}

// WithDetails appends detail lines to the error.
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the
// given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Get extracts an AppError from err, converting foreign errors to an
// internal one so callers always see the structured form.
func Get(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, "internal error")
}

// ConfigError marks a malformed or missing workspace config.
func ConfigError(message string, cause error) *AppError {
	return Wrap(cause, ErrCodeConfig, message)
}

// InvalidTemplate reports every template violation found by validation.
func InvalidTemplate(violations []string) *AppError {
	e := New(ErrCodeInvalidTemplate, "template failed validation")
	e.Details = append(e.Details, violations...)
	return e
}

// MissingVariables reports every variable required by a template but absent
// from the supplied values.
func MissingVariables(names []string) *AppError {
	e := New(ErrCodeMissingVariable, fmt.Sprintf("missing values for %d variable(s)", len(names)))
	e.Details = append(e.Details, names...)
	return e
}

// FileNotFound reports a file-backed variable whose file does not exist.
func FileNotFound(path string) *AppError {
	return New(ErrCodeFileNotFound, "file not found").WithPath(path)
}

// ReadError reports an I/O failure while reading a file.
func ReadError(path string, cause error) *AppError {
	return Wrap(cause, ErrCodeReadFailure, "failed to read file").WithPath(path)
}

// NotFound reports a lookup miss for a named resource.
func NotFound(kind, name string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s %q not found", kind, name))
}

// ResolveError aggregates per-variable resolution failures so a caller can
// report every problem in one pass instead of fixing them one at a time.
type ResolveError struct {
	Failures map[string]error
}

// Error implements the error interface, listing every failing variable in
// name order.
func (e *ResolveError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, name := range e.Names() {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Failures[name]))
	}
	return fmt.Sprintf("failed to resolve %d variable(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Names returns the failing variable names in sorted order.
func (e *ResolveError) Names() []string {
	names := make([]string, 0, len(e.Failures))
	for name := range e.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
