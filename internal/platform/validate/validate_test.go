// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/validate"
	"github.com/taibuivan/setu/pkg/lolicon"
)

/*
TestValidator_Setter tests independent setter checks against a default request.
*/
func TestValidator_Setter(t *testing.T) {
	tests := []struct {
		name     string
		set      func(lolicon.Request) (lolicon.Request, error)
		hasError bool
		field    string
	}{
		{"valid_count", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(5) }, false, ""},
		{"count_too_large", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(21) }, true, "num"},
		{"too_many_sizes", func(r lolicon.Request) (lolicon.Request, error) {
			return r.WithSizes(make([]lolicon.ImageSize, 6))
		}, true, "size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Setter("ignored", tt.set)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation across fields.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Setter("num", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(0) }).            // Fails
		Setter("uid", func(r lolicon.Request) (lolicon.Request, error) { return r.WithAuthors([]uint32{1}) }). // Passes
		Check("date_after", errors.New("invalid date")).                                                      // Fails
		Custom("tag", true, "Tag must not be empty").                                                         // Fails
		Check("keyword", nil).                                                                                // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors in call order
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "num", ae.Details[0].Field)
	assert.Equal(t, "date_after", ae.Details[1].Field)
	assert.Equal(t, "invalid date", ae.Details[1].Message)
	assert.Equal(t, "tag", ae.Details[2].Field)
}
