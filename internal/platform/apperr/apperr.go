// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the setu CLI.

It provides a rich error type that bridges the gap between library errors
(request validation, response decoding, file access) and what the user sees:
a message on stderr and a process exit code.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-facing message.
  - Details: Per-field failures, one per invalid search parameter.
  - Mapping: Explicit mapping from AppError to process exit codes.

Every error that leaves a command should be wrapped as an [AppError] to ensure
consistent output in both text and JSON modes.
*/
package apperr

import (
	"errors"
	"fmt"

	"github.com/taibuivan/setu/internal/platform/constants"
	"github.com/taibuivan/setu/pkg/lolicon"
)

// AppError is the canonical error type returned by CLI commands.
//
// # Security
//
// The Cause field is for logging only and is never printed in JSON output.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "VALIDATION_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// ExitCode is the process exit status.
	ExitCode int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the query parameter name that failed validation (e.g. "num").
	Field string `json:"field"`
	// Rule names the violated constraint.
	Rule string `json:"rule,omitempty"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the user-facing message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Input Errors

// ValidationError creates an [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:     "VALIDATION_ERROR",
		Message:  msg,
		ExitCode: constants.ExitValidation,
		Details:  details,
	}
}

// Unprocessable creates an [AppError] for input that could not be parsed.
func Unprocessable(msg string, cause error) *AppError {
	return &AppError{
		Code:     "UNPROCESSABLE",
		Message:  msg,
		ExitCode: constants.ExitUnprocessable,
		Cause:    cause,
	}
}

// NotFound creates an [AppError] for a missing named resource.
//
// Example:
//
//	apperr.NotFound("Preset file", err) // Returns "Preset file not found"
func NotFound(resource string, cause error) *AppError {
	return &AppError{
		Code:     "NOT_FOUND",
		Message:  resource + " not found",
		ExitCode: constants.ExitNotFound,
		Cause:    cause,
	}
}

// Remote creates an [AppError] for an error reported inside a response body.
func Remote(cause *lolicon.APIError) *AppError {
	return &AppError{
		Code:     "REMOTE_ERROR",
		Message:  "API reported an error: " + cause.Message,
		ExitCode: constants.ExitRemote,
		Cause:    cause,
	}
}

// # Internal Errors

// Internal creates an [AppError] wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Message:  "An unexpected error occurred",
		ExitCode: constants.ExitFailure,
		Cause:    cause,
	}
}

// # Validation Mapping

// Field converts a [*lolicon.ValidationError] into a [FieldError].
func Field(ve *lolicon.ValidationError) FieldError {
	var msg string
	switch {
	case errors.Is(ve, lolicon.ErrTermLimit) && ve.Range != nil:
		msg = fmt.Sprintf("Tag group has %d alternatives, at most %d allowed", ve.Actual, ve.Range.Max)
	case errors.Is(ve, lolicon.ErrEmptyTerm):
		msg = "Tag group must not be empty or contain an empty alternative"
	case ve.Range != nil:
		msg = fmt.Sprintf("Must be between %d and %d, got %d", ve.Range.Min, ve.Range.Max, ve.Actual)
	case ve.Value != "":
		msg = fmt.Sprintf("Invalid value %q", ve.Value)
	default:
		msg = "Invalid value"
	}
	fe := FieldError{Field: ve.Field, Message: msg}
	if ve.Rule != nil {
		fe.Rule = ve.Rule.Error()
	}
	return fe
}

// FromValidation wraps a library validation error as a VALIDATION_ERROR.
// Errors of any other kind become [Internal].
func FromValidation(err error) *AppError {
	if ae := As(err); ae != nil {
		return ae
	}
	if ve := lolicon.AsValidationError(err); ve != nil {
		return ValidationError("Validation failed", Field(ve))
	}
	return Internal(err)
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// ExitCode returns the exit status for err: 0 for nil, the AppError's code
// when present, and [constants.ExitFailure] otherwise.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	if ae := As(err); ae != nil {
		return ae.ExitCode
	}
	return constants.ExitFailure
}
