// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/staranto/sgdatago/internal/command"
	mylog "github.com/staranto/sgdatago/internal/log"
	"github.com/staranto/sgdatago/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain runs the CLI and returns the process exit code: 1 when the app
// cannot be set up and 2 when the command fails.
func realMain(args []string, stdout, stderr io.Writer) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	return 0
}
