// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/pkg/lolicon"
)

/*
TestBuilder_StopsAtFirstError verifies that later setters are ignored after a failure.
*/
func TestBuilder_StopsAtFirstError(t *testing.T) {
	b := lolicon.NewBuilder().
		Category(lolicon.R18).
		Count(200).                     // Fails
		Authors(make([]uint32, 30)...). // Ignored
		Keyword("ignored")

	req, err := b.Build()
	require.Error(t, err)
	assert.Equal(t, b.Err(), err)
	assert.True(t, errors.Is(err, lolicon.ErrOutOfRange))
	assert.Equal(t, "num", lolicon.AsValidationError(err).Field)
	assert.Equal(t, 200, lolicon.AsValidationError(err).Actual)
	assert.Equal(t, lolicon.Request{}, req)
}

/*
TestBuilder_MatchesValueSetters compares the builder against the immutable API.
*/
func TestBuilder_MatchesValueSetters(t *testing.T) {
	at := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	fromBuilder, err := lolicon.NewBuilder().
		Category(lolicon.Mixin).
		Count(4).
		Authors(11, 12).
		Keyword("miku").
		Tags("a|b").
		Sizes(lolicon.Thumb, lolicon.Mini).
		Proxy("i.pixiv.re").
		DateAfterTime(at).
		DateBefore(1800000000000).
		Descending(true).
		ExcludeAI(true).
		AspectRatio("gt1").
		Build()
	require.NoError(t, err)

	req := lolicon.Default().WithCategory(lolicon.Mixin)
	req, err = req.WithCount(4)
	require.NoError(t, err)
	req, err = req.WithAuthors([]uint32{11, 12})
	require.NoError(t, err)
	req = req.WithKeyword("miku")
	req, err = req.WithTags([]string{"a|b"})
	require.NoError(t, err)
	req, err = req.WithSizes([]lolicon.ImageSize{lolicon.Thumb, lolicon.Mini})
	require.NoError(t, err)
	req = req.WithProxy("i.pixiv.re").
		WithDateAfter(uint64(at.UnixMilli())).
		WithDateBefore(1800000000000).
		WithDescending(true).
		WithExcludeAI(true)
	req, err = req.WithAspectRatio("gt1")
	require.NoError(t, err)

	assert.Equal(t, req, fromBuilder)
	assert.Equal(t, req.URL(), fromBuilder.URL())
}

/*
TestBuilder_From continues from an existing request.
*/
func TestBuilder_From(t *testing.T) {
	seed := lolicon.Default().WithCategory(lolicon.R18)

	req, err := lolicon.From(seed).Count(2).Build()
	require.NoError(t, err)

	assert.Equal(t, lolicon.R18, req.Category())
	assert.Equal(t, 2, req.Count())
	assert.Equal(t, lolicon.NonR18, lolicon.Default().Category())
}

/*
TestBuilder_Empty returns the default request.
*/
func TestBuilder_Empty(t *testing.T) {
	req, err := lolicon.NewBuilder().Build()
	require.NoError(t, err)
	assert.NoError(t, lolicon.NewBuilder().Err())
	assert.Equal(t, lolicon.Default().URL(), req.URL())
}
