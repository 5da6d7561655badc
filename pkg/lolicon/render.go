// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import (
	"net/url"
	"strings"
)

// Endpoint is the base URL every request renders against.
const Endpoint = "https://api.lolicon.app/setu/v2"

// fragmenter is implemented once per parameter type. Implementations append
// nothing when their value equals the default.
type fragmenter interface {
	appendQuery(q *query)
}

// query accumulates "&name=value" fragments.
type query struct {
	b      strings.Builder
	escape func(string) string
}

func (q *query) add(name, value string) {
	q.b.WriteByte('&')
	q.b.WriteString(name)
	q.b.WriteByte('=')
	if q.escape != nil {
		value = q.escape(value)
	}
	q.b.WriteString(value)
}

// fields lists the parameters in render order. The order is fixed so that
// equal requests always render byte-identical URLs.
func (r Request) fields() []fragmenter {
	return []fragmenter{
		r.category,
		r.dateAfter,
		r.dateBefore,
		r.dsc,
		r.keyword,
		r.num,
		r.proxy,
		r.size,
		r.tag,
		r.uid,
		r.excludeAI,
		r.aspectRatio,
	}
}

func (r Request) render(escape func(string) string) string {
	q := &query{escape: escape}
	q.b.WriteString(Endpoint)
	q.b.WriteByte('?')
	for _, f := range r.fields() {
		f.appendQuery(q)
	}
	return q.b.String()
}

// URL renders the request as "<Endpoint>?&name=value...".
//
// # Escaping
//
// Values are written verbatim. Keywords, tags, proxy hosts and aspect-ratio
// expressions containing '&', '=', '#', spaces or non-ASCII text must be
// encoded by the caller before transmission; [Request.EncodedURL] does this.
func (r Request) URL() string {
	return r.render(nil)
}

// String is [Request.URL].
func (r Request) String() string {
	return r.URL()
}

// EncodedURL renders like [Request.URL] but passes every value through
// [url.QueryEscape].
func (r Request) EncodedURL() string {
	return r.render(url.QueryEscape)
}
