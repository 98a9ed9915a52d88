// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package settings loads the optional sgdata.yaml file that supplies CLI flag
// defaults.
package settings
