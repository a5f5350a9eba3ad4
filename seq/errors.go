// SPDX-License-Identifier: MIT

package seq

import "errors"

// ErrLengthMismatch indicates parallel slices of different lengths.
var ErrLengthMismatch = errors.New("seq: slice lengths differ")
