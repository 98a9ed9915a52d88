// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package config persists user preferences as a flat JSON object of strings
// and reads single keys back for later runs.
package config
