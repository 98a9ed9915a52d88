// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package gallery holds the two gallery examples. The first downloads the iris
// dataset into the cache and shows its first rows. The second finds the cached
// copy through the data_path config value and reads it again without any
// network access.
package gallery
