// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/sgdatago/internal/aws"
	"github.com/staranto/sgdatago/internal/config"
	"github.com/staranto/sgdatago/internal/download"
	"github.com/staranto/sgdatago/internal/fetch"
	"github.com/staranto/sgdatago/internal/meta"
	"github.com/staranto/sgdatago/internal/output"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr sgdata <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "sgdata", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CommandBuilder constructs a cli.Command for the subcommands using a
// consistent pattern. The builder wires metadata, adds the tldr flag, applies
// global flags (plus the row flags when Rows is set), and sets up validators.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Rows      bool
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{NewTLDRFlag()}, cb.Flags...)
	flags = append(flags, NewGlobalFlags(cb.Name, cb.Meta.Settings.Source)...)
	if cb.Rows {
		flags = append(flags, NewRowFlags(cb.Name, cb.Meta.Settings.Source)...)
	}

	action := cb.Action
	name := cb.Name
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			m := GetMeta(c)
			if len(m.Args) > 1 {
				log.Debugf("Executing action for %v", m.Args[1:])
			}
			if ShortCircuitTLDR(ctx, c, name) {
				return nil
			}
			return action(ctx, c)
		},
	}
}

// requireArgs fails unless exactly n positional args were given.
func requireArgs(cmd *cli.Command, n int) error {
	if got := cmd.Args().Len(); got != n {
		return fmt.Errorf("%s expects %d argument(s), got %d; usage: %s", cmd.Name, n, got, cmd.UsageText)
	}
	return nil
}

// withTimeout bounds ctx by --timeout when it is set.
func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if d := cmd.Duration("timeout"); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// outputOptions reads the output flags together with the settings file.
func outputOptions(cmd *cli.Command) output.Options {
	return output.NewOptions(cmd, GetMeta(cmd).Settings)
}

// stdout is where results are written.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stderr is where progress is drawn.
func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// downloadOptions maps the location flags onto download.Options.
func downloadOptions(cmd *cli.Command) download.Options {
	return download.Options{
		DataDir:   cmd.String("data-dir"),
		ConfigDir: cmd.String("config-dir"),
	}
}

// configStore returns the store for the config dir chosen by --config-dir.
func configStore(cmd *cli.Command) (*config.Store, error) {
	dir, err := GetMeta(cmd).Resolver.ConfigDir(cmd.String("config-dir"))
	if err != nil {
		return nil, err
	}
	return config.NewStore(dir), nil
}

// newRegistry returns the fetchers for a command. The S3 fetcher picks up
// --endpoint, --profile and --region when the command has them.
func newRegistry(cmd *cli.Command) *fetch.Registry {
	reg := fetch.DefaultRegistry()

	var opts []awsx.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}
	endpoint := cmd.String("endpoint")
	if endpoint != "" || len(opts) > 0 {
		reg.Register("s3", &fetch.S3Fetcher{Endpoint: endpoint, Options: opts})
	}

	return reg
}

// newDownloader wires a Downloader with the command's fetchers and a progress
// bar on stderr. Call the returned func once the download has finished.
func newDownloader(cmd *cli.Command) (*download.Downloader, func()) {
	d := download.New(GetMeta(cmd).Resolver, newRegistry(cmd))
	bar := newProgressBar(stderr(cmd))
	d.OnProgress = bar.Update
	return d, bar.Done
}
