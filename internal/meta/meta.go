// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/sgdatago/internal/paths"
	"github.com/staranto/sgdatago/internal/settings"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args     []string
	Settings settings.Type
	Resolver *paths.Resolver
}
