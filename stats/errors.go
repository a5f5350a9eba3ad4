// SPDX-License-Identifier: MIT

package stats

import "errors"

// ErrEmptyInput indicates a statistic was requested over zero samples.
var ErrEmptyInput = errors.New("stats: input must be non-empty")
