// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/cache"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// PurgeCommandAction removes datasets older than --older-than hours and lists
// what was removed. Nothing is purged unless --older-than is given.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	hours := cmd.Float("older-than")
	if hours <= 0 {
		return errors.New("purge requires --older-than HOURS")
	}

	dataDir, err := GetMeta(cmd).Resolver.DataDir(cmd.String("data-dir"))
	if err != nil {
		return err
	}

	now := time.Now()
	removed, err := cache.Purge(dataDir, time.Duration(hours*float64(time.Hour)), now)
	if err != nil {
		return err
	}

	opts := outputOptions(cmd)
	return output.SliceDiceSpit(entryRows(removed, now, opts.Format), entryColumns, opts, stdout(cmd))
}

// PurgeCommandBuilder constructs the cli.Command definition for the "purge"
// command.
func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "purge",
		Usage:     "remove cached datasets older than a given age",
		UsageText: `sgdata purge --older-than HOURS [options]`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "older-than",
				Usage: "age in hours beyond which datasets are removed",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("purge.older-than", altsrc.StringSourcer(meta.Settings.Source)),
				),
				Validator: func(value float64) error {
					return FlagValidators(value, NonNegativeValidator)
				},
			},
		},
		Rows:   true,
		Action: PurgeCommandAction,
		Meta:   meta,
	}).Build()
}
