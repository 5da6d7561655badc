// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/setu/internal/output"
	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/ctxutil"
	"github.com/taibuivan/setu/internal/platform/respond"
	"github.com/taibuivan/setu/pkg/lolicon"
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

var decodeHeaders = []string{"PID", "P", "AUTHOR", "TITLE", "SIZE", "AI", "URL"}

func (a *app) decodeCmd() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "decode [FILE|-]",
		Short: "Decode a response body",
		Long: `Decode a setu v2 response body read from FILE or standard input.

An error reported by the API inside the body exits with status 5.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd, args, size)
		},
	}

	cmd.Flags().StringVar(&size, "size", lolicon.Original.String(), "URL variant to show: original, regular, small, thumb, mini")
	return cmd
}

func (a *app) runDecode(cmd *cobra.Command, args []string, sizeName string) error {
	ctx := cmd.Context()
	logger := ctxutil.GetLogger(ctx)

	size, err := lolicon.ParseImageSize(sizeName)
	if err != nil {
		return apperr.FromValidation(err)
	}

	input, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close()

	resp, err := lolicon.Decode(input)
	if err != nil {
		return apperr.Unprocessable("Invalid response body", err)
	}

	var apiErr *lolicon.APIError
	if errors.As(resp.Err(), &apiErr) {
		return apperr.Remote(apiErr)
	}

	logger.DebugContext(ctx, "response_decoded",
		slog.String("input", name),
		slog.Int("artworks", len(resp.Data)),
	)

	if a.jsonOutput {
		return respond.OK(ctx, cmd.OutOrStdout(), resp.Data)
	}

	if len(resp.Data) == 0 {
		a.printer.Warning("No artworks in response")
		return nil
	}

	table := output.NewTable(a.printer.Out(), decodeHeaders)
	for _, art := range resp.Data {
		table.AddRow(artworkRow(art, size))
	}
	return table.Render()
}

// openInput returns the reader for args and a name for logging.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, apperr.NotFound("Input file", err)
		}
		return nil, path, apperr.Internal(fmt.Errorf("decode: open %s: %w", path, err))
	}
	return file, path, nil
}

func artworkRow(art lolicon.Artwork, size lolicon.ImageSize) []string {
	link, ok := art.URLs.Get(size)
	if !ok {
		link = "-"
	}
	return []string{
		strconv.FormatInt(art.PID, 10),
		strconv.Itoa(art.P),
		art.Author,
		art.Title,
		fmt.Sprintf("%dx%d", art.Width, art.Height),
		art.AIType.String(),
		link,
	}
}
