// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/internal/output"
	"github.com/taibuivan/setu/internal/platform/apperr"
)

/*
TestParseColorMode tests the accepted color mode names.
*/
func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected output.ColorMode
		hasError bool
	}{
		{"auto", output.ColorAuto, false},
		{"always", output.ColorAlways, false},
		{"never", output.ColorNever, false},
		{"rainbow", output.ColorAuto, true},
		{"", output.ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := output.ParseColorMode(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

/*
TestResolveColors tests environment handling in auto mode.
*/
func TestResolveColors(t *testing.T) {
	assert.True(t, output.ResolveColors(output.ColorAlways))
	assert.False(t, output.ResolveColors(output.ColorNever))

	t.Run("no_color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, output.ResolveColors(output.ColorAuto))
	})

	t.Run("dumb_terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, output.ResolveColors(output.ColorAuto))
	})
}

/*
TestPrinter_Plain verifies stream separation without colors.
*/
func TestPrinter_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := output.NewPrinter(&out, &errOut, false)

	p.Print("result %d", 1)
	p.Warning("careful")
	p.AppError(apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "num", Message: "Must be between 1 and 20, got 0"},
	))

	assert.Equal(t, "result 1\n", out.String())
	assert.Equal(t,
		"[WARN] careful\n[ERROR] Validation failed\n  num: Must be between 1 and 20, got 0\n",
		errOut.String(),
	)
	assert.Equal(t, "x", p.Bold("x"))
}

/*
TestTable_Render verifies headers and rows reach the writer.
*/
func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := output.NewTable(&buf, []string{"PID", "AUTHOR"})
	table.AddRow([]string{"95181214", "somebody"})
	table.AddRow([]string{"1", "other"})

	require.NoError(t, table.Render())

	rendered := buf.String()
	assert.Contains(t, rendered, "PID")
	assert.Contains(t, rendered, "AUTHOR")
	assert.Contains(t, rendered, "somebody")
	assert.Less(t, strings.Index(rendered, "95181214"), strings.Index(rendered, "other"))
}
