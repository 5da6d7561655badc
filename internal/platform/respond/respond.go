// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides JSON output helpers used by every command's --json mode.
//
// # Architecture
//
// This package centralizes the presentation logic for machine-readable output.
// It ensures that every result (Success or Error) across the entire CLI
// follows a strict, predictable JSON envelope structure, so scripts can parse
// the output of any command the same way.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful results.
type SuccessEnvelope struct {
	Data  interface{} `json:"data"`
	RunID string      `json:"run_id,omitempty"`
}

// ErrorEnvelope is the JSON envelope for error results.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
	RunID   string              `json:"run_id,omitempty"`
}

// JSON writes payload as indented JSON followed by a newline.
func JSON(writer io.Writer, payload interface{}) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}

// OK writes data wrapped in the standard success envelope.
func OK(ctx context.Context, writer io.Writer, data interface{}) error {
	return JSON(writer, SuccessEnvelope{Data: data, RunID: ctxutil.GetRunID(ctx)})
}

// Error converts any Go error into a standardized JSON error envelope.
func Error(ctx context.Context, writer io.Writer, err error) error {
	logger := ctxutil.GetLogger(ctx)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected error: log full details but print only a generic message.
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
		)
		appError = apperr.Internal(err)
	}

	if appError.Cause != nil {
		logger.DebugContext(ctx, "command_error_cause",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	return JSON(writer, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
		RunID:   ctxutil.GetRunID(ctx),
	})
}
