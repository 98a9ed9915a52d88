// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
	"github.com/staranto/sgdatago/internal/paths"
)

// PathsCommandAction prints the resolved data dir, config dir and config
// file. Resolving the data dir creates it.
func PathsCommandAction(ctx context.Context, cmd *cli.Command) error {
	r := GetMeta(cmd).Resolver

	dataDir, err := r.DataDir(cmd.String("data-dir"))
	if err != nil {
		return err
	}
	configDir, err := r.ConfigDir(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	return output.SpitMap(map[string]string{
		"data_dir":    dataDir,
		"config_dir":  configDir,
		"config_file": paths.ConfigFile(configDir),
	}, outputOptions(cmd), stdout(cmd))
}

// PathsCommandBuilder constructs the cli.Command definition for the "paths"
// command.
func PathsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "paths",
		Usage:     "show the data and config locations",
		UsageText: `sgdata paths [options]`,
		Rows:      true,
		Action:    PathsCommandAction,
		Meta:      meta,
	}).Build()
}
