// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for sgdata. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
