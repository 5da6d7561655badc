// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"slices"
	"strconv"
	"strings"
)

// # Limits

const (
	// DefaultCount is the number of artworks returned when num is omitted.
	DefaultCount = 1
	// MinCount and MaxCount bound num.
	MinCount = 1
	MaxCount = 20

	// MaxAuthors bounds the number of uid values.
	MaxAuthors = 20

	// MaxTagGroups bounds the number of tag AND-groups.
	MaxTagGroups = 3
	// MaxTagTerms bounds the OR-terms inside one AND-group.
	MaxTagTerms = 20
	// TagTermSeparator joins the OR-terms of an AND-group.
	TagTermSeparator = "|"

	// MaxSizes bounds the size selection.
	MaxSizes = 5

	// DefaultProxy is the image host used when proxy is omitted.
	DefaultProxy = "i.pixiv.cat"
)

// # Count

type count int

var countLimit = Range{Min: MinCount, Max: MaxCount}

func newCount(n int) (count, error) {
	if !countLimit.Contains(n) {
		return 0, outOfRange("num", countLimit, n)
	}
	return count(n), nil
}

func (c count) appendQuery(q *query) {
	if c == DefaultCount {
		return
	}
	q.add("num", strconv.Itoa(int(c)))
}

// # Authors

// authorFilter is empty when no author restriction applies.
type authorFilter []uint32

var authorLimit = Range{Min: 0, Max: MaxAuthors}

func newAuthorFilter(ids []uint32) (authorFilter, error) {
	if !authorLimit.Contains(len(ids)) {
		return nil, outOfRange("uid", authorLimit, len(ids))
	}
	return slices.Clone(ids), nil
}

func (a authorFilter) appendQuery(q *query) {
	for _, id := range a {
		q.add("uid", strconv.FormatUint(uint64(id), 10))
	}
}

// # Tags

// tagFilter holds AND-groups; each group is an OR-expression of terms joined
// by [TagTermSeparator].
type tagFilter []string

var (
	tagGroupLimit = Range{Min: 0, Max: MaxTagGroups}
	tagTermLimit  = Range{Min: 1, Max: MaxTagTerms}
)

// newTagFilter checks every group's terms before the group count, so a
// single oversized group reports [ErrTermLimit].
func newTagFilter(groups []string) (tagFilter, error) {
	for _, group := range groups {
		terms := strings.Split(group, TagTermSeparator)
		if !tagTermLimit.Contains(len(terms)) {
			limit := tagTermLimit
			return nil, &ValidationError{
				Field:  "tag",
				Rule:   ErrTermLimit,
				Range:  &limit,
				Actual: len(terms),
				Value:  group,
			}
		}
		if slices.Contains(terms, "") {
			return nil, &ValidationError{Field: "tag", Rule: ErrEmptyTerm, Value: group}
		}
	}
	if !tagGroupLimit.Contains(len(groups)) {
		return nil, outOfRange("tag", tagGroupLimit, len(groups))
	}
	return slices.Clone(groups), nil
}

func (t tagFilter) appendQuery(q *query) {
	for _, group := range t {
		q.add("tag", group)
	}
}

// # Optional Text

// optionalText backs keyword and aspectRatio.
type optionalText struct {
	name  string
	value string
	set   bool
}

func (o optionalText) appendQuery(q *query) {
	if o.set {
		q.add(o.name, o.value)
	}
}

// # Proxy

type proxyHost string

func (p proxyHost) appendQuery(q *query) {
	if p == DefaultProxy {
		return
	}
	q.add("proxy", string(p))
}

// # Date Bounds

// dateBound is a UNIX timestamp in milliseconds, rendered only when set.
type dateBound struct {
	name   string
	millis uint64
	set    bool
}

func (d dateBound) appendQuery(q *query) {
	if d.set {
		q.add(d.name, strconv.FormatUint(d.millis, 10))
	}
}

// # Flags

// descending has no explicit false token on the wire.
type descending bool

func (d descending) appendQuery(q *query) {
	if d {
		q.add("dsc", "true")
	}
}

// excludeAI is always rendered with its literal.
type excludeAI bool

func (e excludeAI) appendQuery(q *query) {
	q.add("excludeAI", strconv.FormatBool(bool(e)))
}
