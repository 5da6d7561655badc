// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/internal/cli"
	"github.com/taibuivan/setu/internal/platform/constants"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes the CLI with an isolated environment. Colors are off unless
// env says otherwise.
func run(t *testing.T, env map[string]string, stdin string, args ...string) result {
	t.Helper()

	vars := map[string]string{"SETU_COLOR": "never"}
	maps.Copy(vars, env)

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), cli.Options{
		Args:   args,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Env:    vars,
	})
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// decodeJSON parses stdout of a --json invocation.
func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)
	return doc
}

/*
TestRun_Errors verifies exit codes for failures raised before a command runs.
*/
func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		code int
	}{
		{"unknown_flag", nil, []string{"url", "--bogus"}, constants.ExitValidation},
		{"bad_flag_value", nil, []string{"url", "--num", "many"}, constants.ExitValidation},
		{"bad_color_flag", nil, []string{"version", "--color", "rainbow"}, constants.ExitValidation},
		{"bad_environment", map[string]string{"SETU_LOG_FORMAT": "xml"}, []string{"version"}, constants.ExitUnprocessable},
		{"unknown_command", nil, []string{"fetch"}, constants.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.env, "", tt.args...)
			assert.Equal(t, tt.code, res.code)
			assert.Empty(t, res.stdout)
			assert.NotEmpty(t, res.stderr)
		})
	}
}

/*
TestRun_UnknownCommand verifies that cobra usage errors are shown verbatim.
*/
func TestRun_UnknownCommand(t *testing.T) {
	res := run(t, nil, "", "fetch")
	assert.Equal(t, constants.ExitFailure, res.code)
	assert.Contains(t, res.stderr, `unknown command "fetch"`)
}

/*
TestRun_DebugLogging verifies that --verbose writes structured logs to stderr
with the run id and app attributes.
*/
func TestRun_DebugLogging(t *testing.T) {
	res := run(t, map[string]string{"SETU_LOG_FORMAT": "json"}, "", "url", "--verbose")
	require.Equal(t, constants.ExitOK, res.code)

	assert.Contains(t, res.stderr, `"msg":"configuration_loaded"`)
	assert.Contains(t, res.stderr, `"app":"setu"`)
	assert.Contains(t, res.stderr, `"run_id":"`)
	assert.Contains(t, res.stderr, `"started_at":"`)
	assert.Contains(t, res.stderr, `"source":`)
	assert.NotContains(t, res.stdout, "configuration_loaded")
}

/*
TestRun_ProductionLogsJSON verifies that production forces JSON logs without
source locations.
*/
func TestRun_ProductionLogsJSON(t *testing.T) {
	res := run(t, map[string]string{"SETU_ENVIRONMENT": "production", "SETU_LOG_FORMAT": "text"}, "", "url", "--verbose")
	require.Equal(t, constants.ExitOK, res.code)

	assert.Contains(t, res.stderr, `"msg":"configuration_loaded"`)
	assert.NotContains(t, res.stderr, `"source":`)
}

/*
TestRun_QuietByDefault verifies that no logs are written at the info level.
*/
func TestRun_QuietByDefault(t *testing.T) {
	res := run(t, nil, "", "url")
	require.Equal(t, constants.ExitOK, res.code)
	assert.Empty(t, res.stderr)
}
