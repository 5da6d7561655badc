// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"slices"
	"time"
)

// Request is an immutable set of validated search parameters.
//
// Every WithX method returns a copy with one field replaced; the receiver is
// never modified. Fallible setters validate their input and return the
// unchanged receiver together with a [*ValidationError] on failure.
// The zero value is not a valid configuration; start from [Default].
//
// # Concurrency
//
// A Request may be read from multiple goroutines. It never shares slices
// with its callers.
type Request struct {
	category    Category
	num         count
	uid         authorFilter
	keyword     optionalText
	tag         tagFilter
	size        sizeSelection
	proxy       proxyHost
	dateAfter   dateBound
	dateBefore  dateBound
	dsc         descending
	excludeAI   excludeAI
	aspectRatio optionalText
}

// Default returns the starting configuration: every field at its documented default.
func Default() Request {
	return Request{
		category:    NonR18,
		num:         DefaultCount,
		keyword:     optionalText{name: "keyword"},
		size:        slices.Clone(defaultSizes),
		proxy:       DefaultProxy,
		dateAfter:   dateBound{name: "dateAfter"},
		dateBefore:  dateBound{name: "dateBefore"},
		aspectRatio: optionalText{name: "aspectRatio"},
	}
}

// # Infallible Setters

// WithCategory sets whether the result includes R-18 artworks. A value
// outside [NonR18], [R18] and [Mixin] leaves the request unchanged.
func (r Request) WithCategory(c Category) Request {
	if c.known() {
		r.category = c
	}
	return r
}

// WithKeyword sets the free-text keyword. Tags are usually the better filter.
func (r Request) WithKeyword(keyword string) Request {
	r.keyword = optionalText{name: "keyword", value: keyword, set: true}
	return r
}

// WithProxy sets the image host used in the returned URLs.
func (r Request) WithProxy(host string) Request {
	r.proxy = proxyHost(host)
	return r
}

// WithDateAfter only returns artworks uploaded after millis (UNIX milliseconds).
func (r Request) WithDateAfter(millis uint64) Request {
	r.dateAfter = dateBound{name: "dateAfter", millis: millis, set: true}
	return r
}

// WithDateBefore only returns artworks uploaded before millis (UNIX milliseconds).
func (r Request) WithDateBefore(millis uint64) Request {
	r.dateBefore = dateBound{name: "dateBefore", millis: millis, set: true}
	return r
}

// WithDateAfterTime is [Request.WithDateAfter] for a [time.Time].
// Times before the UNIX epoch clamp to zero.
func (r Request) WithDateAfterTime(t time.Time) Request {
	return r.WithDateAfter(unixMillis(t))
}

// WithDateBeforeTime is [Request.WithDateBefore] for a [time.Time].
func (r Request) WithDateBeforeTime(t time.Time) Request {
	return r.WithDateBefore(unixMillis(t))
}

// WithDescending disables the automatic conversion between keywords and tags when true.
func (r Request) WithDescending(dsc bool) Request {
	r.dsc = descending(dsc)
	return r
}

// WithExcludeAI drops AI-generated artworks when true.
func (r Request) WithExcludeAI(exclude bool) Request {
	r.excludeAI = excludeAI(exclude)
	return r
}

// # Validated Setters

// WithCount sets the number of artworks, [MinCount] to [MaxCount].
func (r Request) WithCount(n int) (Request, error) {
	c, err := newCount(n)
	if err != nil {
		return r, err
	}
	r.num = c
	return r, nil
}

// WithAuthors restricts the result to up to [MaxAuthors] author ids.
// An empty list removes the restriction.
func (r Request) WithAuthors(ids []uint32) (Request, error) {
	a, err := newAuthorFilter(ids)
	if err != nil {
		return r, err
	}
	r.uid = a
	return r, nil
}

// WithTags sets up to [MaxTagGroups] AND-groups. Each group may combine up to
// [MaxTagTerms] alternatives joined by [TagTermSeparator], e.g. "白丝|黑丝".
func (r Request) WithTags(groups []string) (Request, error) {
	t, err := newTagFilter(groups)
	if err != nil {
		return r, err
	}
	r.tag = t
	return r, nil
}

// WithSizes selects up to [MaxSizes] image variants. The order is kept.
// An empty selection returns artwork metadata without URLs.
func (r Request) WithSizes(sizes []ImageSize) (Request, error) {
	s, err := newSizeSelection(sizes)
	if err != nil {
		return r, err
	}
	r.size = s
	return r, nil
}

// WithAspectRatio sets an expression such as "lt1" (portrait) or "gte1.5lt2".
func (r Request) WithAspectRatio(expr string) (Request, error) {
	a, err := newAspectRatio(expr)
	if err != nil {
		return r, err
	}
	r.aspectRatio = a
	return r, nil
}

// # Getters

func (r Request) Category() Category { return r.category }
func (r Request) Count() int         { return int(r.num) }
func (r Request) Authors() []uint32  { return slices.Clone(r.uid) }
func (r Request) Tags() []string     { return slices.Clone(r.tag) }
func (r Request) Sizes() []ImageSize { return slices.Clone(r.size) }
func (r Request) Proxy() string      { return string(r.proxy) }
func (r Request) Descending() bool   { return bool(r.dsc) }
func (r Request) ExcludeAI() bool    { return bool(r.excludeAI) }

func (r Request) Keyword() (string, bool) {
	return r.keyword.value, r.keyword.set
}

func (r Request) DateAfter() (uint64, bool) {
	return r.dateAfter.millis, r.dateAfter.set
}

func (r Request) DateBefore() (uint64, bool) {
	return r.dateBefore.millis, r.dateBefore.set
}

func (r Request) AspectRatio() (string, bool) {
	return r.aspectRatio.value, r.aspectRatio.set
}

func unixMillis(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
