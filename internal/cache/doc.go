// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache inspects the dataset cache directory. A file's presence is
// the only thing that marks a dataset as downloaded.
package cache
