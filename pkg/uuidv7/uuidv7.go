// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Usage
//
// Every CLI invocation is tagged with a run id so that log lines written by
// one run can be grouped and ordered by time, even when several runs share a
// log file.
package uuidv7

import (
	"time"

	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
//
// # Safety
//
// It panics only if the OS random source is unavailable. OS entropy failure
// is an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// Time extracts the creation time embedded in a UUIDv7 string.
func Time(id string) (time.Time, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	sec, nsec := parsed.Time().UnixTime()
	return time.Unix(sec, nsec), nil
}
