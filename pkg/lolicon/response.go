// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Response is the JSON body returned by [Endpoint].
type Response struct {
	Error string    `json:"error"`
	Data  []Artwork `json:"data"`
}

// Err returns an [*APIError] when the body reports a failure.
func (r *Response) Err() error {
	if r.Error == "" {
		return nil
	}
	return &APIError{Message: r.Error}
}

// Artwork describes one page of a pixiv artwork.
type Artwork struct {
	PID        int64  `json:"pid"`
	P          int    `json:"p"`
	UID        int64  `json:"uid"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	R18        bool   `json:"r18"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Tags       Tags   `json:"tags"`
	Ext        string `json:"ext"`
	AIType     AIType `json:"aiType"`
	UploadDate int64  `json:"uploadDate"`
	URLs       URLs   `json:"urls"`
}

// UploadedAt converts UploadDate (UNIX milliseconds) to a [time.Time].
func (a Artwork) UploadedAt() time.Time {
	return time.UnixMilli(a.UploadDate)
}

// Tags decodes both the list form and the older comma-joined string form.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var joined string
		if err := json.Unmarshal(trimmed, &joined); err != nil {
			return err
		}
		*t = splitTags(joined)
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

func splitTags(joined string) Tags {
	if joined == "" {
		return Tags{}
	}
	var tags Tags
	for _, tag := range strings.Split(joined, ",") {
		if clean := strings.TrimSpace(tag); clean != "" {
			tags = append(tags, clean)
		}
	}
	return tags
}

// AIType classifies how an artwork was produced.
type AIType int

const (
	AIUnknown AIType = iota
	AINotAI
	AIGenerated
)

func (a AIType) String() string {
	switch a {
	case AINotAI:
		return "human"
	case AIGenerated:
		return "ai"
	default:
		return "unknown"
	}
}

// URLs holds one link per requested [ImageSize]. Sizes that were not
// requested are empty.
type URLs struct {
	Original string `json:"original,omitempty"`
	Regular  string `json:"regular,omitempty"`
	Small    string `json:"small,omitempty"`
	Thumb    string `json:"thumb,omitempty"`
	Mini     string `json:"mini,omitempty"`
}

// Get returns the link for size and whether it was present.
func (u URLs) Get(size ImageSize) (string, bool) {
	var link string
	switch size {
	case Original:
		link = u.Original
	case Regular:
		link = u.Regular
	case Small:
		link = u.Small
	case Thumb:
		link = u.Thumb
	case Mini:
		link = u.Mini
	}
	return link, link != ""
}

// Decode reads one response body from r.
func Decode(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("lolicon: decode response: %w", err)
	}
	return &resp, nil
}
