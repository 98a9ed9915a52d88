// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/cache"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

var entryColumns = []string{"name", "bytes", "size", "modified"}

// entryRows turns cache entries into output rows. modified is relative to
// now for text output and RFC 3339 otherwise.
func entryRows(entries []cache.Entry, now time.Time, format string) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		modified := e.ModTime.UTC().Format(time.RFC3339)
		if format == "text" {
			modified = humanize.RelTime(e.ModTime, now, "ago", "from now")
		}
		rows = append(rows, map[string]interface{}{
			"name":     e.Name,
			"path":     e.Path,
			"bytes":    e.Size,
			"size":     humanize.Bytes(uint64(e.Size)),
			"modified": modified,
		})
	}
	return rows
}

// LsCommandAction lists the datasets in the data directory.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	dataDir, err := GetMeta(cmd).Resolver.DataDir(cmd.String("data-dir"))
	if err != nil {
		return err
	}

	entries, err := cache.List(dataDir)
	if err != nil {
		return err
	}

	opts := outputOptions(cmd)
	return output.SliceDiceSpit(entryRows(entries, time.Now(), opts.Format), entryColumns, opts, stdout(cmd))
}

// LsCommandBuilder constructs the cli.Command definition for the "ls" command.
func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "ls",
		Usage:     "list cached datasets",
		UsageText: `sgdata ls [options]`,
		Rows:      true,
		Action:    LsCommandAction,
		Meta:      meta,
	}).Build()
}
