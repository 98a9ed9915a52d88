// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/paths"
	"github.com/staranto/sgdatago/internal/settings"
)

func InitApp(_ context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the sgdata
	// subcommand and also represents the namespace key to be used when
	// retrieving settings values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// The settings file is optional, but one that exists and cannot be read is
	// reported.
	s, err := settings.Load()
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s.Namespace = ns
	log.Debugf("settings: %s", s.Source)

	r, err := paths.NewResolver()
	if err != nil {
		return nil, err
	}

	meta := meta.Meta{
		Args:     args,
		Settings: s,
		Resolver: r,
	}

	app := &cli.Command{
		Name:  "sgdata",
		Usage: "gallery dataset cache",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "sgdata version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		ConfigCommandBuilder(app, meta),
		DownloadCommandBuilder(app, meta),
		GalleryCommandBuilder(app, meta),
		GetCommandBuilder(app, meta),
		HeadCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		PathsCommandBuilder(app, meta),
		PurgeCommandBuilder(app, meta),
		SetCommandBuilder(app, meta),
		UnsetCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
