// Package strutil provides the string helpers used when reporting results:
// printf-style formatting and ASCII case-insensitive comparison.
//
// Format is a thin printf wrapper, so `go vet` checks its verbs against the
// argument types at build time. FormatStrict repeats that check at run time
// for formats that are not string literals.
//
//	s := strutil.FormatEnergy(-76.0266327341) // "-76.0266327341 Ha"
//	ok := strutil.EqualsCI("Slater", "SLATER") // true
package strutil
