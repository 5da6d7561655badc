// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire CLI.

Categories:

  - Metadata: application name and version.
  - Exit Codes: process exit statuses returned by commands.
  - Environment: names of the SETU_* configuration variables.
  - Field Identifiers: keys shared by JSON output and structured logs.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from command code.
*/
package constants

// # Metadata

const (
	AppName    = "setu"
	AppVersion = "0.1.0-dev"
)

// # Exit Codes

const (
	// ExitOK is returned when the command succeeded.
	ExitOK = 0

	// ExitFailure is returned for unexpected errors.
	ExitFailure = 1

	// ExitValidation is returned when one or more search parameters are invalid.
	ExitValidation = 2

	// ExitUnprocessable is returned when input (a response body, a preset) cannot be parsed.
	ExitUnprocessable = 3

	// ExitNotFound is returned when an input file does not exist.
	ExitNotFound = 4

	// ExitRemote is returned when a decoded response body carries an API error.
	ExitRemote = 5
)

// # Environment

const (
	// EnvPrefix is shared by every configuration variable.
	EnvPrefix = "SETU_"
)

// # Field Identifiers

const (
	FieldURL     = "url"
	FieldRunID   = "run_id"
	FieldApp     = "app"
	FieldVersion = "version"
)
