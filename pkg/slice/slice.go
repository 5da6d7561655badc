// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic mapping
helpers for user input lists.
*/
package slice

// TryMap maps input with a fallible transform and stops at the first error.
// A nil input yields a nil result.
func TryMap[T any, U any](input []T, transform func(T) (U, error)) ([]U, error) {
	if input == nil {
		return nil, nil
	}

	result := make([]U, 0, len(input))
	for _, v := range input {
		u, err := transform(v)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}

	return result, nil
}

// MapNonZero maps input and drops results equal to the zero value of U,
// e.g. strings that normalize to "".
func MapNonZero[T any, U comparable](input []T, transform func(T) U) []U {
	var zero U

	// Not pre-allocating: blank entries are common in hand-typed lists
	var result []U
	for _, v := range input {
		if u := transform(v); u != zero {
			result = append(result, u)
		}
	}

	return result
}
