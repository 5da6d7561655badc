// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/internal/platform/constants"
)

/*
TestVersion covers the text, short and JSON forms.
*/
func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		res := run(t, nil, "", "version")
		require.Equal(t, constants.ExitOK, res.code)
		assert.Contains(t, res.stdout, "setu version "+constants.AppVersion)
		assert.Contains(t, res.stdout, "go version:")
		assert.Contains(t, res.stdout, "platform:")
	})

	t.Run("short", func(t *testing.T) {
		res := run(t, nil, "", "version", "--short")
		require.Equal(t, constants.ExitOK, res.code)
		assert.Equal(t, constants.AppVersion+"\n", res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, nil, "", "version", "--json")
		require.Equal(t, constants.ExitOK, res.code)

		doc := decodeJSON(t, res.stdout)
		data := doc["data"].(map[string]any)
		assert.Equal(t, constants.AppName, data["app"])
		assert.Equal(t, constants.AppVersion, data["version"])
	})
}
