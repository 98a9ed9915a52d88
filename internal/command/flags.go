// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewTLDRFlag returns the --tldr flag. It is hidden unless tldr is installed.
func NewTLDRFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// NewGlobalFlags returns the flags every subcommand carries. ns is the
// subcommand name, used as the namespace when looking values up in the
// settings file at source.
func NewGlobalFlags(ns string, source string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(source)),
				yaml.YAML("color", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, source, &cli.StringFlag{
			Name:  "config-dir",
			Usage: "directory holding .sg_template/ (default is the home directory)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SGDATA_CONFIG_DIR"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, source, &cli.StringFlag{
			Name:  "data-dir",
			Usage: "dataset cache directory (default ~/sg_template_data)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SGDATA_DATA_DIR"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(source)),
				yaml.YAML("output", altsrc.StringSourcer(source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "give up on network operations after this long (0 waits forever)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SGDATA_TIMEOUT"),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(source)),
				yaml.YAML("titles", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
	}

	return
}

// NewRowFlags returns the flags of commands that emit a list of rows.
func NewRowFlags(ns string, source string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(source)),
			),
		},
	}
}

// NewS3Flags returns the flags that shape the S3 client used for s3:// URLs.
func NewS3Flags(ns string, source string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, source, &cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3 endpoint URL, for S3 compatible stores",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SGDATA_S3_ENDPOINT"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, source, &cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, source, &cli.StringFlag{
			Name:  "region",
			Usage: "AWS region",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
			),
		}),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas reports whether target is on the PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
