// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command setu builds Lolicon setu v2 request URLs and decodes response bodies.
//
// # Exit Codes
//
//	0  success
//	1  unexpected failure
//	2  invalid search parameters or flags
//	3  unparseable input (response body, preset, configuration)
//	4  input file not found
//	5  the API reported an error in the response body
//
// No business logic lives here.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/setu/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	code := cli.Run(ctx, cli.Options{
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	stop()
	os.Exit(code)
}
