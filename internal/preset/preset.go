// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preset loads saved searches from YAML files.

A preset names any subset of the search parameters using the same keys as
the query string:

	r18: 0
	num: 5
	tag:
	  - 萝莉|少女
	  - 白丝|黑丝
	size: [original, regular]
	exclude_ai: true

Unknown keys are rejected so that a typo never silently widens a search.
Presets sit between environment defaults and command line flags: anything a
flag sets wins over the preset.
*/
package preset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/validate"
	"github.com/taibuivan/setu/pkg/lolicon"
	"github.com/taibuivan/setu/pkg/query"
	"github.com/taibuivan/setu/pkg/slice"
	"github.com/taibuivan/setu/pkg/tagtext"
)

// Preset is one saved search. Absent keys leave the parameter untouched.
type Preset struct {
	R18         string   `yaml:"r18"          validate:"omitempty,oneof=0 1 2 nonr18 r18 mixin"`
	Num         *int     `yaml:"num"`
	UID         []uint32 `yaml:"uid"          validate:"dive,min=1"`
	Keyword     string   `yaml:"keyword"`
	Tag         []string `yaml:"tag"          validate:"dive,required"`
	Size        []string `yaml:"size"         validate:"dive,oneof=original regular small thumb mini"`
	Proxy       string   `yaml:"proxy"`
	DateAfter   string   `yaml:"date_after"`
	DateBefore  string   `yaml:"date_before"`
	Dsc         *bool    `yaml:"dsc"`
	ExcludeAI   *bool    `yaml:"exclude_ai"`
	AspectRatio string   `yaml:"aspect_ratio"`
}

// # Loading

// Load reads and validates the preset stored at path.
func Load(path string) (*Preset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("Preset file", err)
		}
		return nil, apperr.Internal(fmt.Errorf("preset: open %s: %w", path, err))
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes one YAML document from r. An empty document yields an empty
// preset.
func Parse(r io.Reader) (*Preset, error) {
	var p Preset

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperr.Unprocessable("Invalid preset file", err)
	}

	if err := structValidator().Struct(&p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, apperr.Internal(err)
		}
		return nil, apperr.ValidationError("Invalid preset file", fieldErrors(fieldErrs)...)
	}

	return &p, nil
}

// structValidator reports fields by their YAML key.
func structValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldErrors(errs validator.ValidationErrors) []apperr.FieldError {
	out := make([]apperr.FieldError, 0, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "oneof":
			msg = fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
		case "min":
			msg = fmt.Sprintf("Must be at least %s", fe.Param())
		case "required":
			msg = "Must not be empty"
		default:
			msg = "Invalid value"
		}
		out = append(out, apperr.FieldError{Field: fe.Field(), Rule: fe.Tag(), Message: msg})
	}
	return out
}

// # Applying

// step sets one parameter on a request.
type step struct {
	field string
	set   func(lolicon.Request) (lolicon.Request, error)
}

// ApplyTo sets every parameter present in p on base and stops at the first
// invalid one.
func (p *Preset) ApplyTo(base lolicon.Request) (lolicon.Request, error) {
	req := base
	for _, s := range p.steps() {
		next, err := s.set(req)
		if err != nil {
			return base, err
		}
		req = next
	}
	return req, nil
}

// Check validates every parameter present in p independently and records
// each failure on v.
func (p *Preset) Check(v *validate.Validator) *validate.Validator {
	for _, s := range p.steps() {
		v.Setter(s.field, s.set)
	}
	return v
}

func (p *Preset) steps() []step {
	var steps []step
	add := func(field string, set func(lolicon.Request) (lolicon.Request, error)) {
		steps = append(steps, step{field: field, set: set})
	}

	if p.R18 != "" {
		add("r18", func(r lolicon.Request) (lolicon.Request, error) {
			c, err := lolicon.ParseCategory(p.R18)
			if err != nil {
				return r, err
			}
			return r.WithCategory(c), nil
		})
	}
	if p.Num != nil {
		n := *p.Num
		add("num", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(n) })
	}
	if p.UID != nil {
		add("uid", func(r lolicon.Request) (lolicon.Request, error) { return r.WithAuthors(p.UID) })
	}
	if p.Keyword != "" {
		keyword := tagtext.Normalize(p.Keyword)
		add("keyword", func(r lolicon.Request) (lolicon.Request, error) { return r.WithKeyword(keyword), nil })
	}
	if p.Tag != nil {
		groups := tagtext.Groups(p.Tag)
		add("tag", func(r lolicon.Request) (lolicon.Request, error) { return r.WithTags(groups) })
	}
	if p.Size != nil {
		add("size", func(r lolicon.Request) (lolicon.Request, error) {
			sizes, err := slice.TryMap(p.Size, lolicon.ParseImageSize)
			if err != nil {
				return r, err
			}
			return r.WithSizes(sizes)
		})
	}
	if p.Proxy != "" {
		add("proxy", func(r lolicon.Request) (lolicon.Request, error) { return r.WithProxy(p.Proxy), nil })
	}
	if p.DateAfter != "" {
		add("date_after", func(r lolicon.Request) (lolicon.Request, error) {
			ms, err := query.Millis(p.DateAfter)
			if err != nil {
				return r, err
			}
			return r.WithDateAfter(ms), nil
		})
	}
	if p.DateBefore != "" {
		add("date_before", func(r lolicon.Request) (lolicon.Request, error) {
			ms, err := query.Millis(p.DateBefore)
			if err != nil {
				return r, err
			}
			return r.WithDateBefore(ms), nil
		})
	}
	if p.Dsc != nil {
		dsc := *p.Dsc
		add("dsc", func(r lolicon.Request) (lolicon.Request, error) { return r.WithDescending(dsc), nil })
	}
	if p.ExcludeAI != nil {
		exclude := *p.ExcludeAI
		add("exclude_ai", func(r lolicon.Request) (lolicon.Request, error) { return r.WithExcludeAI(exclude), nil })
	}
	if p.AspectRatio != "" {
		add("aspect_ratio", func(r lolicon.Request) (lolicon.Request, error) { return r.WithAspectRatio(p.AspectRatio) })
	}

	return steps
}
