// SPDX-License-Identifier: MIT

package strutil

import "errors"

// ErrBadFormat is returned by FormatStrict when the format verbs and the
// arguments disagree (wrong type, missing or extra operands).
var ErrBadFormat = errors.New("strutil: format/argument mismatch")
