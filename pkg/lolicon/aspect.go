// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lolicon

import "regexp"

// aspectRatioPattern accepts one or two comparisons, e.g. "lt1", "gte0.5lt1.5".
var aspectRatioPattern = regexp.MustCompile(`^((gt|gte|lt|lte|eq)\d+(\.\d+)?){1,2}$`)

// AspectRatioChecked reports whether aspect-ratio expressions are validated.
// Building with the lolicon_noaspectcheck tag turns the check off.
func AspectRatioChecked() bool {
	return aspectRatioChecked
}

func newAspectRatio(expr string) (optionalText, error) {
	if aspectRatioChecked && !aspectRatioPattern.MatchString(expr) {
		return optionalText{}, &ValidationError{Field: "aspectRatio", Rule: ErrAspectRatio, Value: expr}
	}
	return optionalText{name: "aspectRatio", value: expr, set: true}, nil
}
