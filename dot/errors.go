// SPDX-License-Identifier: MIT

package dot

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates the two operands have different lengths.
var ErrLengthMismatch = errors.New("dot: operand lengths differ")

func dotErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
