// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lolicon builds request URLs for the Lolicon setu v2 API and describes
the JSON it returns.

It never talks to the network. Callers render a [Request] into a URL, issue the
HTTP request themselves, and decode the body with [Decode].

Usage:

	req, err := lolicon.NewBuilder().
		Category(lolicon.R18).
		Count(1).
		Authors(16731).
		ExcludeAI(true).
		AspectRatio("lt1").
		Sizes(lolicon.Original).
		Build()
	if err != nil {
	    return err
	}

	req.URL() // https://api.lolicon.app/setu/v2?&r18=1&uid=16731&excludeAI=true&aspectRatio=lt1

Architecture:

  - Validation: every setter checks its own field once; an invalid value never
    enters a [Request].
  - Default omission: a field equal to its default renders nothing, except
    excludeAI which is always explicit.
  - Determinism: fields render in a fixed order (r18, dateAfter, dateBefore,
    dsc, keyword, num, proxy, size, tag, uid, excludeAI, aspectRatio), so equal
    requests render byte-identical URLs regardless of how they were built.

Values are not percent-encoded by [Request.URL]. Use [Request.EncodedURL] when
keywords or tags may contain reserved or non-ASCII characters.
*/
package lolicon
