// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"errors"
	"fmt"
)

// # Rules

// Sentinel rules carried by [ValidationError]. Match them with [errors.Is].
var (
	// ErrOutOfRange reports a number or a list length outside its inclusive range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTermLimit reports a tag AND-group holding too many OR-terms.
	ErrTermLimit = errors.New("OR-group exceeds term limit")

	// ErrEmptyTerm reports a tag AND-group that is empty or holds an empty OR-term.
	ErrEmptyTerm = errors.New("OR-group has an empty term")

	// ErrAspectRatio reports an aspect-ratio expression that does not match the grammar.
	ErrAspectRatio = errors.New("aspect-ratio expression does not match grammar")

	// ErrUnknownValue reports a token outside an enumerated vocabulary.
	ErrUnknownValue = errors.New("unknown value")
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies in [Min, Max].
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// # Validation Error

// ValidationError is the only error a setter returns.
//
// Rule is one of the sentinel errors above. Range is set for [ErrOutOfRange]
// and [ErrTermLimit]; Actual holds the offending number or length and Value
// holds the offending text when the input was textual.
type ValidationError struct {
	Field  string
	Rule   error
	Range  *Range
	Actual int
	Value  string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Range != nil:
		return fmt.Sprintf("lolicon: %s: %v: expected %s, found %d", e.Field, e.Rule, e.Range, e.Actual)
	case e.Value != "":
		return fmt.Sprintf("lolicon: %s: %v: %q", e.Field, e.Rule, e.Value)
	default:
		return fmt.Sprintf("lolicon: %s: %v", e.Field, e.Rule)
	}
}

// Unwrap exposes the rule to [errors.Is].
func (e *ValidationError) Unwrap() error { return e.Rule }

// AsValidationError extracts the [*ValidationError] from err's chain. It returns nil if not found.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func outOfRange(field string, r Range, actual int) *ValidationError {
	return &ValidationError{Field: field, Rule: ErrOutOfRange, Range: &r, Actual: actual}
}

// # Remote Errors

// APIError is the non-empty "error" string of a response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "lolicon: api error: " + e.Message
}
