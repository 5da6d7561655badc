// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses the textual values a user types on the command line or
// in a preset file into the typed values the request builder expects.
//
// # Strictness
//
// Unlike lenient query-string helpers, every parser here reports malformed
// entries instead of dropping them: a silently ignored author id would change
// the search.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Uint32s parses decimal ids. Each value may itself be a comma-separated list;
// blank entries are skipped.
func Uint32s(vals []string) ([]uint32, error) {
	var res []uint32
	for _, item := range StringSlice(strings.Join(vals, ",")) {
		n, err := strconv.ParseUint(item, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("query: invalid id %q", item)
		}
		res = append(res, uint32(n))
	}
	return res, nil
}

// StringSlice parses a single comma-separated string into a trimmed slice of
// strings, dropping empty entries.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// dateLayouts are tried in order after the plain millisecond form.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Millis parses a point in time into UNIX milliseconds.
//
// # Accepted Forms
//
//   - "1700000000000" (UNIX milliseconds)
//   - "2024-01-02T15:04:05Z" (RFC 3339)
//   - "2024-01-02" (midnight UTC)
func Millis(val string) (uint64, error) {
	val = strings.TrimSpace(val)
	if n, err := strconv.ParseUint(val, 10, 64); err == nil {
		return n, nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if t.UnixMilli() < 0 {
			return 0, fmt.Errorf("query: date %q is before the UNIX epoch", val)
		}
		return uint64(t.UnixMilli()), nil
	}

	return 0, fmt.Errorf("query: invalid date %q (want UNIX milliseconds, RFC 3339 or YYYY-MM-DD)", val)
}
