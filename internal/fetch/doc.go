// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package fetch retrieves a remote resource into a local file. Fetchers are
// picked by URL scheme; each makes exactly one attempt.
package fetch
