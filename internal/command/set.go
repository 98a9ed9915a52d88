// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/meta"
)

// SetCommandAction stores VALUE under KEY.
func SetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2); err != nil { //nolint:mnd
		return err
	}
	return config.SetConfig(GetMeta(cmd).Resolver, cmd.Args().Get(0), cmd.Args().Get(1), cmd.String("config-dir"))
}

// SetCommandBuilder constructs the cli.Command definition for the "set"
// command.
func SetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "set",
		Usage:     "store a config value",
		UsageText: `sgdata set KEY VALUE [options]`,
		Action:    SetCommandAction,
		Meta:      meta,
	}).Build()
}
