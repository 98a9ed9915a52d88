// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package paths resolves where downloaded datasets are cached and where the
// per-user config file lives, creating the data directory on demand.
package paths
