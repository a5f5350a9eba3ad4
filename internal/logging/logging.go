// SPDX-License-Identifier: MIT

// Package logging holds the zap logger shared by sciutil subpackages.
// The default is a no-op logger; library code never writes to stderr on its own.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the active logger. Never nil.
func L() *zap.Logger {
	return current.Load()
}

// Named returns the active logger scoped to a subpackage name.
func Named(pkg string) *zap.Logger {
	return current.Load().Named(pkg)
}

// Set swaps the active logger; nil restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}
