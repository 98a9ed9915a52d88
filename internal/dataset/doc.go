// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package dataset reads the header-less CSV files the gallery examples work
// with and slices off their first rows.
package dataset
