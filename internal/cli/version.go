// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/taibuivan/setu/internal/platform/constants"
	"github.com/taibuivan/setu/internal/platform/respond"
)

func (a *app) versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if a.jsonOutput {
				return respond.OK(cmd.Context(), w, map[string]string{
					constants.FieldApp:     constants.AppName,
					constants.FieldVersion: constants.AppVersion,
				})
			}

			if short {
				fmt.Fprintln(w, constants.AppVersion)
				return nil
			}

			fmt.Fprintf(w, "%s version %s\n", constants.AppName, constants.AppVersion)
			fmt.Fprintf(w, "  go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print version string only")
	return cmd
}
