// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/dataset"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// resolveDataFile makes a relative name absolute. --data-dir wins, then the
// data_path recorded in the config file.
func resolveDataFile(cmd *cli.Command, name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	if dir := cmd.String("data-dir"); dir != "" {
		abs, err := GetMeta(cmd).Resolver.DataDir(dir)
		if err != nil {
			return "", err
		}
		return filepath.Join(abs, name), nil
	}

	store, err := configStore(cmd)
	if err != nil {
		return "", err
	}
	dir, err := store.Get(config.DataPathKey)
	if err != nil {
		return "", fmt.Errorf("failed to locate %s: %w", name, err)
	}
	return filepath.Join(dir, name), nil
}

// frameRows converts a frame into output rows keyed by column name.
func frameRows(f *dataset.Frame) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, f.Len())
	for _, rec := range f.Records() {
		row := make(map[string]interface{}, len(rec))
		for k, v := range rec {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// spitFrame emits the frame's rows in column order.
func spitFrame(cmd *cli.Command, f *dataset.Frame) error {
	return output.SliceDiceSpit(frameRows(f), f.Columns, outputOptions(cmd), stdout(cmd))
}

// HeadCommandAction prints the first rows of a cached CSV dataset.
func HeadCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	path, err := resolveDataFile(cmd, cmd.Args().First())
	if err != nil {
		return err
	}
	log.Debugf("head %s", path)

	frame, err := dataset.ReadCSV(path)
	if err != nil {
		return err
	}
	return spitFrame(cmd, frame.Head(int(cmd.Int("rows"))))
}

// HeadCommandBuilder constructs the cli.Command definition for the "head"
// command.
func HeadCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "head",
		Usage:     "show the first rows of a cached dataset",
		UsageText: `sgdata head FILE [-n N] [options]`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rows",
				Aliases: []string{"n"},
				Usage:   "number of rows to show",
				Value:   dataset.DefaultHead,
				Sources: cli.NewValueSourceChain(
					yaml.YAML("head.rows", altsrc.StringSourcer(meta.Settings.Source)),
				),
			},
		},
		Rows:   true,
		Action: HeadCommandAction,
		Meta:   meta,
	}).Build()
}
