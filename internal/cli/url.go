// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/constants"
	"github.com/taibuivan/setu/internal/platform/ctxutil"
	"github.com/taibuivan/setu/internal/platform/respond"
	"github.com/taibuivan/setu/internal/platform/validate"
	"github.com/taibuivan/setu/internal/preset"
	"github.com/taibuivan/setu/pkg/lolicon"
	"github.com/taibuivan/setu/pkg/query"
	"github.com/taibuivan/setu/pkg/slice"
	"github.com/taibuivan/setu/pkg/tagtext"
)

// urlFlags holds the raw values of the url command flags.
type urlFlags struct {
	r18         string
	num         int
	uid         []string
	keyword     string
	tag         []string
	size        []string
	proxy       string
	dateAfter   string
	dateBefore  string
	dsc         bool
	excludeAI   bool
	aspectRatio string
	preset      string
	encode      bool
}

// urlParams holds the parsed flag values that need conversion before they
// reach the builder.
type urlParams struct {
	category   lolicon.Category
	authors    []uint32
	tags       []string
	sizes      []lolicon.ImageSize
	dateAfter  uint64
	dateBefore uint64
}

func (a *app) urlCmd() *cobra.Command {
	f := &urlFlags{}

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the request URL for a search",
		Long: `Print the request URL for a search.

Parameters left at their defaults are omitted from the query string.
Values come from built-in defaults, then SETU_* environment variables,
then the preset file, then flags; later sources win.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runURL(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.r18, "r18", "nonr18", "category: nonr18, r18 or mixin (or 0, 1, 2)")
	flags.IntVar(&f.num, "num", lolicon.DefaultCount, "number of artworks")
	flags.StringArrayVar(&f.uid, "uid", nil, "author id; repeatable, accepts comma lists")
	flags.StringVar(&f.keyword, "keyword", "", "keyword matched against title, author and tags")
	flags.StringArrayVar(&f.tag, "tag", nil, "tag AND-group, alternatives separated by '|'; repeatable")
	flags.StringArrayVar(&f.size, "size", nil, "image size: original, regular, small, thumb, mini; repeatable, accepts comma lists")
	flags.StringVar(&f.proxy, "proxy", lolicon.DefaultProxy, "image proxy host")
	flags.StringVar(&f.dateAfter, "date-after", "", "only artworks uploaded after this time (UNIX ms, RFC 3339 or YYYY-MM-DD)")
	flags.StringVar(&f.dateBefore, "date-before", "", "only artworks uploaded before this time (UNIX ms, RFC 3339 or YYYY-MM-DD)")
	flags.BoolVar(&f.dsc, "dsc", false, "disable automatic translation of tags")
	flags.BoolVar(&f.excludeAI, "exclude-ai", false, "exclude AI-generated artworks")
	flags.StringVar(&f.aspectRatio, "aspect-ratio", "", "aspect-ratio filter, e.g. lt1 or gte0.5lt1.5")
	flags.StringVar(&f.preset, "preset", "", "YAML preset file (default from SETU_PRESET)")
	flags.BoolVar(&f.encode, "encode", false, "percent-encode parameter values")

	return cmd
}

func (a *app) runURL(cmd *cobra.Command, f *urlFlags) error {
	ctx := cmd.Context()
	logger := ctxutil.GetLogger(ctx)

	p, err := a.loadPreset(f)
	if err != nil {
		return err
	}

	req, err := a.buildRequest(cmd, f, p)
	if err != nil {
		return err
	}

	link := req.URL()
	if f.encode {
		link = req.EncodedURL()
	}

	logger.DebugContext(ctx, "request_built",
		slog.Int("num", req.Count()),
		slog.Int("tag_groups", len(req.Tags())),
		slog.Bool("preset", p != nil),
	)

	if a.jsonOutput {
		return respond.OK(ctx, cmd.OutOrStdout(), map[string]string{constants.FieldURL: link})
	}
	a.printer.Print("%s", link)
	return nil
}

// loadPreset returns nil when neither the flag nor the environment names a file.
func (a *app) loadPreset(f *urlFlags) (*preset.Preset, error) {
	path := f.preset
	if path == "" {
		path = a.cfg.Preset
	}
	if path == "" {
		return nil, nil
	}
	return preset.Load(path)
}

// baseRequest applies the environment defaults.
func (a *app) baseRequest() lolicon.Request {
	req := lolicon.Default()
	if a.cfg.Proxy != "" {
		req = req.WithProxy(a.cfg.Proxy)
	}
	if a.cfg.ExcludeAI {
		req = req.WithExcludeAI(true)
	}
	return req
}

// buildRequest validates every source first so that all problems are
// reported at once, then layers preset and flags over the environment
// defaults.
func (a *app) buildRequest(cmd *cobra.Command, f *urlFlags, p *preset.Preset) (lolicon.Request, error) {
	changed := cmd.Flags().Changed

	v := &validate.Validator{}
	if p != nil {
		p.Check(v)
	}
	params := parseURLFlags(f, changed, v)
	if v.HasErrors() {
		return lolicon.Request{}, v.Err()
	}

	req := a.baseRequest()
	if p != nil {
		var err error
		if req, err = p.ApplyTo(req); err != nil {
			return lolicon.Request{}, apperr.FromValidation(err)
		}
	}

	b := lolicon.From(req)
	if changed("r18") {
		b.Category(params.category)
	}
	if changed("num") {
		b.Count(f.num)
	}
	if changed("uid") {
		b.Authors(params.authors...)
	}
	if changed("keyword") {
		b.Keyword(tagtext.Normalize(f.keyword))
	}
	if changed("tag") {
		b.Tags(params.tags...)
	}
	if changed("size") {
		b.Sizes(params.sizes...)
	}
	if changed("proxy") {
		b.Proxy(f.proxy)
	}
	if changed("date-after") {
		b.DateAfter(params.dateAfter)
	}
	if changed("date-before") {
		b.DateBefore(params.dateBefore)
	}
	if changed("dsc") {
		b.Descending(f.dsc)
	}
	if changed("exclude-ai") {
		b.ExcludeAI(f.excludeAI)
	}
	if changed("aspect-ratio") {
		b.AspectRatio(f.aspectRatio)
	}

	built, err := b.Build()
	if err != nil {
		return lolicon.Request{}, apperr.FromValidation(err)
	}
	return built, nil
}

// parseURLFlags converts the changed flags and records every failure on v.
func parseURLFlags(f *urlFlags, changed func(string) bool, v *validate.Validator) urlParams {
	var (
		params urlParams
		err    error
	)

	if changed("r18") {
		params.category, err = lolicon.ParseCategory(f.r18)
		v.Check("r18", err)
	}
	if changed("num") {
		v.Setter("num", func(r lolicon.Request) (lolicon.Request, error) { return r.WithCount(f.num) })
	}
	if changed("uid") {
		if params.authors, err = query.Uint32s(f.uid); err != nil {
			v.Check("uid", err)
		} else {
			v.Setter("uid", func(r lolicon.Request) (lolicon.Request, error) { return r.WithAuthors(params.authors) })
		}
	}
	if changed("tag") {
		params.tags = tagtext.Groups(f.tag)
		v.Setter("tag", func(r lolicon.Request) (lolicon.Request, error) { return r.WithTags(params.tags) })
	}
	if changed("size") {
		params.sizes, err = parseSizes(f.size)
		if err != nil {
			v.Check("size", err)
		} else {
			v.Setter("size", func(r lolicon.Request) (lolicon.Request, error) { return r.WithSizes(params.sizes) })
		}
	}
	afterSet := false
	if changed("date-after") {
		params.dateAfter, err = query.Millis(f.dateAfter)
		v.Check("date_after", err)
		afterSet = err == nil
	}
	if changed("date-before") {
		params.dateBefore, err = query.Millis(f.dateBefore)
		v.Check("date_before", err)
		if err == nil && afterSet {
			v.Custom("date_before", params.dateBefore <= params.dateAfter, "Must be later than date_after")
		}
	}
	if changed("aspect-ratio") {
		v.Setter("aspect_ratio", func(r lolicon.Request) (lolicon.Request, error) { return r.WithAspectRatio(f.aspectRatio) })
	}

	return params
}

// parseSizes expands comma lists and parses each size name.
func parseSizes(vals []string) ([]lolicon.ImageSize, error) {
	names := query.StringSlice(strings.Join(vals, ","))
	return slice.TryMap(names, lolicon.ParseImageSize)
}
