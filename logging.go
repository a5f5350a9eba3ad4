// SPDX-License-Identifier: MIT

package sciutil

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/sciutil/internal/logging"
)

// SetLogger routes the diagnostic output of every sciutil subpackage to l.
// Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}
