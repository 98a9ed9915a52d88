// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/gallery"
	"github.com/staranto/sgdatago/internal/meta"
)

// GalleryCommandAction runs the gallery examples for a dataset (iris by
// default): download it and show its head, then read it back through the
// config file and show the head again. --reuse skips the download.
func GalleryCommandAction(ctx context.Context, cmd *cli.Command) error {
	name := "iris"
	if cmd.Args().Len() > 0 {
		name = cmd.Args().First()
	}
	ex, ok := gallery.Examples[name]
	if !ok {
		known := make([]string, 0, len(gallery.Examples))
		for k := range gallery.Examples {
			known = append(known, k)
		}
		sort.Strings(known)
		return fmt.Errorf("unknown gallery example %q, must be one of %v", name, known)
	}

	if !cmd.Bool("reuse") {
		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		d, done := newDownloader(cmd)
		head, err := gallery.Download(ctx, d, ex, downloadOptions(cmd))
		done()
		if err != nil {
			return err
		}
		if err := spitFrame(cmd, head); err != nil {
			return err
		}
	}

	store, err := configStore(cmd)
	if err != nil {
		return err
	}
	head, err := gallery.Reuse(store, ex)
	if err != nil {
		return err
	}
	return spitFrame(cmd, head)
}

// GalleryCommandBuilder constructs the cli.Command definition for the
// "gallery" command.
func GalleryCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "gallery",
		Usage:     "run the gallery examples against a sample dataset",
		UsageText: `sgdata gallery [iris] [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reuse",
				Usage: "only read the cached copy, do not download",
			},
		},
		Rows:   true,
		Action: GalleryCommandAction,
		Meta:   meta,
	}).Build()
}
