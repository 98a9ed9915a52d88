// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// DownloadCommandAction is the action handler for the "download" subcommand.
// It makes sure FILE is in the data directory, fetching URL only when it is
// not, records the data directory in the config file and prints the path.
func DownloadCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2); err != nil { //nolint:mnd
		return err
	}
	rawURL, name := cmd.Args().Get(0), cmd.Args().Get(1)

	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	d, done := newDownloader(cmd)
	path, err := d.Download(ctx, rawURL, name, downloadOptions(cmd))
	done()
	if err != nil {
		return err
	}

	return output.SpitValue(path, outputOptions(cmd), stdout(cmd))
}

// DownloadCommandBuilder constructs the cli.Command definition for the
// "download" command.
func DownloadCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "download",
		Usage:     "download a dataset into the cache unless it is already there",
		UsageText: `sgdata download URL FILE [options]`,
		Flags:     NewS3Flags("download", meta.Settings.Source),
		Action:    DownloadCommandAction,
		Meta:      meta,
	}).Build()
}
