// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"strconv"
	"strings"
)

// Category selects the rating of the returned artworks.
type Category uint8

const (
	// NonR18 returns only all-ages artworks. It is the default and is never rendered.
	NonR18 Category = iota
	// R18 returns only R-18 artworks.
	R18
	// Mixin returns both.
	Mixin
)

var categoryNames = [...]string{"nonr18", "r18", "mixin"}

func (c Category) known() bool {
	return int(c) < len(categoryNames)
}

func (c Category) String() string {
	if c.known() {
		return categoryNames[c]
	}
	return "category(" + strconv.Itoa(int(c)) + ")"
}

// ParseCategory accepts a name ("nonr18", "r18", "mixin", case-insensitive)
// or the wire value ("0", "1", "2").
func ParseCategory(s string) (Category, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if token == name || token == strconv.Itoa(i) {
			return Category(i), nil
		}
	}
	return NonR18, &ValidationError{Field: "r18", Rule: ErrUnknownValue, Value: s}
}

func (c Category) appendQuery(q *query) {
	if c == NonR18 {
		return
	}
	q.add("r18", strconv.Itoa(int(c)))
}
