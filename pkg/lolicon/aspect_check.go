// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build !lolicon_noaspectcheck

package lolicon

const aspectRatioChecked = true
