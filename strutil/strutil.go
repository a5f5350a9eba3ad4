// SPDX-License-Identifier: MIT

package strutil

import (
	"fmt"
	"regexp"
	"strings"
)

// EnergyFormat renders an energy in Hartree with ten decimals.
const EnergyFormat = "%.10f Ha"

// fmtErrorMarker matches the diagnostics fmt embeds in its output:
// "%!" plus an optional verb, then "(" (%!d(string=x), %!(EXTRA ...),
// %!v(MISSING), %!(BADWIDTH), ...).
var fmtErrorMarker = regexp.MustCompile(`%!.?\(`)

// Format renders format with args, printf style.
// Verb/argument mismatches are not rejected: fmt embeds a %!verb(type=value)
// marker in the result. Use FormatStrict to turn that into an error.
func Format(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// FormatStrict is Format with run-time validation.
// It returns ErrBadFormat when the result holds more fmt error markers than
// the format's literal text (with %% collapsed) accounts for. A bare "%!"
// such as Format("%%%s", "!") is not a marker. Operands whose own text looks
// like a marker ("%!x(") are still reported as mismatches.
func FormatStrict(format string, args ...any) (string, error) {
	out := fmt.Sprintf(format, args...)
	literal := strings.ReplaceAll(format, "%%", "%")
	if countMarkers(out) > countMarkers(literal) {
		return out, fmt.Errorf("%q: %w", format, ErrBadFormat)
	}

	return out, nil
}

func countMarkers(s string) int {
	return len(fmtErrorMarker.FindAllStringIndex(s, -1))
}

// FormatEnergy renders e with EnergyFormat.
func FormatEnergy(e float64) string {
	return fmt.Sprintf(EnergyFormat, e)
}

// EqualsCI reports whether a and b are equal under ASCII case folding.
// Bytes outside A-Z/a-z must match exactly; no Unicode folding is applied.
func EqualsCI(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}

	return true
}

// lowerASCII maps 'A'..'Z' to 'a'..'z' and leaves every other byte alone.
func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
