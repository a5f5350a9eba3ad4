// SPDX-License-Identifier: MIT

package sciutil

// Numeric constants shared by the host code.
const (
	// Eps is the default absolute tolerance for floating-point comparisons.
	Eps = 1.0e-12

	// Inf is a large finite sentinel used where arithmetic on IEEE +Inf would
	// poison sums (e.g. energy upper bounds). It is NOT math.Inf(1).
	Inf = 1.0e100

	// Pi to double precision.
	Pi = 3.14159265358979323846

	// Sqrt2 is √2.
	Sqrt2 = 1.4142135623730951

	// Sqrt2Inv is 1/√2.
	Sqrt2Inv = 0.7071067811865475
)

// I is the imaginary unit.
const I = complex(0, 1)
