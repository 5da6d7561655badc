// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"slices"
	"strings"
)

// ImageSize is one of the image variants the API can link to.
type ImageSize uint8

const (
	Original ImageSize = iota
	Regular
	Small
	Thumb
	Mini
)

var sizeNames = [...]string{"original", "regular", "small", "thumb", "mini"}

func (s ImageSize) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return "unknown"
}

// ImageSizes returns the full vocabulary in wire order.
func ImageSizes() []ImageSize {
	return []ImageSize{Original, Regular, Small, Thumb, Mini}
}

// ParseImageSize accepts a lowercase wire token, case-insensitive.
func ParseImageSize(s string) (ImageSize, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range sizeNames {
		if token == name {
			return ImageSize(i), nil
		}
	}
	return Original, &ValidationError{Field: "size", Rule: ErrUnknownValue, Value: s}
}

// sizeSelection is compared to its default as an ordered sequence:
// [regular] differs from [original] even though both hold one element.
type sizeSelection []ImageSize

var (
	sizeLimit    = Range{Min: 0, Max: 5}
	defaultSizes = sizeSelection{Original}
)

func newSizeSelection(sizes []ImageSize) (sizeSelection, error) {
	if !sizeLimit.Contains(len(sizes)) {
		return nil, outOfRange("size", sizeLimit, len(sizes))
	}
	for _, s := range sizes {
		if int(s) >= len(sizeNames) {
			return nil, &ValidationError{Field: "size", Rule: ErrUnknownValue, Value: s.String()}
		}
	}
	return slices.Clone(sizes), nil
}

func (s sizeSelection) isDefault() bool {
	return slices.Equal(s, defaultSizes)
}

func (s sizeSelection) appendQuery(q *query) {
	if s.isDefault() {
		return
	}
	for _, size := range s {
		q.add("size", size.String())
	}
}
