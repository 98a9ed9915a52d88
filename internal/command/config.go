// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// ConfigCommandAction lists every key/value pair in the config file. A
// missing file lists nothing.
func ConfigCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, err := configStore(cmd)
	if err != nil {
		return err
	}

	cfg, err := store.Load()
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return err
	}

	return output.SpitMap(cfg.Data, outputOptions(cmd), stdout(cmd))
}

// ConfigCommandBuilder constructs the cli.Command definition for the "config"
// command.
func ConfigCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "config",
		Usage:     "list config values",
		UsageText: `sgdata config [options]`,
		Rows:      true,
		Action:    ConfigCommandAction,
		Meta:      meta,
	}).Build()
}
