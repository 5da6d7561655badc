// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import "time"

// Builder assembles a [Request] through a fluent, chainable API.
//
// The first failing setter is recorded; every later call is a no-op and
// [Builder.Build] returns that error.
//
// # Example
//
//	req, err := lolicon.NewBuilder().
//		Category(lolicon.R18).
//		Authors(16731).
//		ExcludeAI(true).
//		AspectRatio("lt1").
//		Build()
//
// # Concurrency
//
// Builder is not safe for concurrent use. Use one instance per build chain.
type Builder struct {
	req Request
	err error
}

// NewBuilder starts from [Default].
func NewBuilder() *Builder {
	return &Builder{req: Default()}
}

// From starts from an existing request.
func From(req Request) *Builder {
	return &Builder{req: req}
}

func (b *Builder) Category(c Category) *Builder {
	if b.err == nil {
		b.req = b.req.WithCategory(c)
	}
	return b
}

func (b *Builder) Count(n int) *Builder {
	return b.apply(func(r Request) (Request, error) { return r.WithCount(n) })
}

func (b *Builder) Authors(ids ...uint32) *Builder {
	return b.apply(func(r Request) (Request, error) { return r.WithAuthors(ids) })
}

func (b *Builder) Keyword(keyword string) *Builder {
	if b.err == nil {
		b.req = b.req.WithKeyword(keyword)
	}
	return b
}

func (b *Builder) Tags(groups ...string) *Builder {
	return b.apply(func(r Request) (Request, error) { return r.WithTags(groups) })
}

func (b *Builder) Sizes(sizes ...ImageSize) *Builder {
	return b.apply(func(r Request) (Request, error) { return r.WithSizes(sizes) })
}

func (b *Builder) Proxy(host string) *Builder {
	if b.err == nil {
		b.req = b.req.WithProxy(host)
	}
	return b
}

func (b *Builder) DateAfter(millis uint64) *Builder {
	if b.err == nil {
		b.req = b.req.WithDateAfter(millis)
	}
	return b
}

func (b *Builder) DateBefore(millis uint64) *Builder {
	if b.err == nil {
		b.req = b.req.WithDateBefore(millis)
	}
	return b
}

func (b *Builder) DateAfterTime(t time.Time) *Builder {
	return b.DateAfter(unixMillis(t))
}

func (b *Builder) DateBeforeTime(t time.Time) *Builder {
	return b.DateBefore(unixMillis(t))
}

func (b *Builder) Descending(dsc bool) *Builder {
	if b.err == nil {
		b.req = b.req.WithDescending(dsc)
	}
	return b
}

func (b *Builder) ExcludeAI(exclude bool) *Builder {
	if b.err == nil {
		b.req = b.req.WithExcludeAI(exclude)
	}
	return b
}

func (b *Builder) AspectRatio(expr string) *Builder {
	return b.apply(func(r Request) (Request, error) { return r.WithAspectRatio(expr) })
}

// Err returns the first recorded failure, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the assembled request, or the first recorded failure.
func (b *Builder) Build() (Request, error) {
	if b.err != nil {
		return Request{}, b.err
	}
	return b.req, nil
}

func (b *Builder) apply(set func(Request) (Request, error)) *Builder {
	if b.err != nil {
		return b
	}
	b.req, b.err = set(b.req)
	return b
}
