// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/droneplay/droneplay/lib/principal"
)

// ErrorCategory classifies command errors so that scripts driving
// droneplay with --json can tell bad input from a missing account from
// a privilege problem without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, an unsafe username, unparseable flags.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced account does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the process lacks permission for a
	// write, almost always because it is not running as root.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryInternal indicates an unexpected I/O failure.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by commands. It wraps an
// inner error, preserving the chain for errors.Is and errors.As, and
// optionally carries a hint telling the user how to recover.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is appended after a blank line when set.
	Hint string
}

// Error returns the underlying message, followed by the hint if any.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced account does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// sudoHint is attached to permission failures.
const sudoHint = "Policy files and mantra directories are owned by root. Re-run with sudo."

// Classify wraps err in a [ToolError] according to what it is. Errors
// that already carry a category, or that implement ExitCode, are
// returned unchanged. Nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return err
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, principal.ErrInvalidUsername):
		return &ToolError{Category: CategoryValidation, Err: err}
	case errors.Is(err, principal.ErrUnknownUser):
		return &ToolError{Category: CategoryNotFound, Err: err}
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return &ToolError{Category: CategoryForbidden, Err: err, Hint: sudoHint}
	}
	return &ToolError{Category: CategoryInternal, Err: err}
}
