// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tagtext normalizes user-typed tag and keyword text before it is
// placed into a search request.
//
// # Usage
//
// Pixiv tags are mostly Japanese and Chinese. The same tag typed on two
// keyboards can arrive in different Unicode forms ("が" as one code point or
// as "か" + combining mark), which would render two different URLs for the
// same search. Normalizing to NFC keeps rendered URLs stable.
package tagtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/setu/pkg/slice"
)

// separator joins the OR-terms of a tag group. It mirrors lolicon.TagTermSeparator.
const separator = "|"

// Normalize converts s into a canonical form.
//
// # Transformation Pipeline
//
// 1. Removes control characters (they cannot travel in a URL).
// 2. Composes to NFC (か + ゙ → が).
// 3. Trims surrounding whitespace.
func Normalize(s string) string {
	t := transform.Chain(transform.RemoveFunc(isControl), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.TrimSpace(result)
}

// Group normalizes every OR-term of a tag group and drops empty terms, so
// "白丝 | 黑丝|" becomes "白丝|黑丝".
func Group(group string) string {
	return strings.Join(slice.MapNonZero(strings.Split(group, separator), Normalize), separator)
}

// Groups applies [Group] to each entry and drops groups that end up empty.
func Groups(groups []string) []string {
	return slice.MapNonZero(groups, Group)
}

// isControl reports whether r is a Unicode control character (e.g., '\n', '\t').
func isControl(r rune) bool {
	return unicode.Is(unicode.Cc, r)
}
