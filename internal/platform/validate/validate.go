// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// The request builder stops at the first invalid parameter. On the command
// line that is unfriendly: a user who mistyped three flags would need three
// runs to find them. Because every builder setter only touches its own field,
// each parameter can be checked independently against a default request and
// every failure reported at once.
package validate

import (
	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/pkg/lolicon"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every command invocation.
type Validator struct {
	errs []apperr.FieldError
}

// Check records err against field when it is non-nil.
//
// A [*lolicon.ValidationError] keeps its own field name and rule; any other
// error (typically a parse failure) is recorded under field with its message.
func (v *Validator) Check(field string, err error) *Validator {
	if err == nil {
		return v
	}
	if ve := lolicon.AsValidationError(err); ve != nil {
		v.errs = append(v.errs, apperr.Field(ve))
		return v
	}
	v.add(field, err.Error())
	return v
}

// Setter applies set to a default request and records the outcome.
//
// # Example
//
//	v.Setter("num", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(n) })
func (v *Validator) Setter(field string, set func(lolicon.Request) (lolicon.Request, error)) *Validator {
	_, err := set(lolicon.Default())
	return v.Check(field, err)
}

// Custom adds a failure with a custom message if the condition is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
