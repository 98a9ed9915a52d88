// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// GetCommandAction prints the value stored under KEY.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	value, err := config.GetConfig(GetMeta(cmd).Resolver, cmd.Args().First(), cmd.String("config-dir"))
	if err != nil {
		return err
	}
	return output.SpitValue(value, outputOptions(cmd), stdout(cmd))
}

// GetCommandBuilder constructs the cli.Command definition for the "get"
// command.
func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "get",
		Usage:     "print a config value",
		UsageText: `sgdata get KEY [options]`,
		Action:    GetCommandAction,
		Meta:      meta,
	}).Build()
}
