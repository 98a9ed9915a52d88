// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/meta"
)

// UnsetCommandAction removes KEY from the config file.
func UnsetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	store, err := configStore(cmd)
	if err != nil {
		return err
	}
	return store.Unset(cmd.Args().First())
}

// UnsetCommandBuilder constructs the cli.Command definition for the "unset"
// command.
func UnsetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "unset",
		Usage:     "remove a config value",
		UsageText: `sgdata unset KEY [options]`,
		Action:    UnsetCommandAction,
		Meta:      meta,
	}).Build()
}
