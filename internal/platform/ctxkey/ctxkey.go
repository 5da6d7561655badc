// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by CLI commands.
//
// # Safety
//
// It is used to store and retrieve per-invocation values (run ID, logger).
// Using a private, unexported type for keys prevents collisions with third-party
// packages (cobra among them) that also store values in the command context.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRunID is the context key for the UUIDv7 run correlation value.
	KeyRunID key = "run_id"

	// KeyLogger is the context key for the per-invocation [*log/slog.Logger].
	KeyLogger key = "logger"
)
