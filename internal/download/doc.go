// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package download fetches a dataset into the cache directory unless it is
// already there, and records the cache directory in the user's config.
package download
