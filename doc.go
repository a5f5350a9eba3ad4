// Package sciutil is a box of small, stateless numeric and string helpers
// shared by the solver packages of a larger scientific code.
//
// 🚀 What is in the box?
//
//	Independent routines, each living in its own subpackage:
//		• strutil/ — printf-style formatting, ASCII case-insensitive equality
//		• stats/   — mean and population standard deviation
//		• dot/     — fork-join dot products (real·real, real·complex, complex·complex)
//		• bitops/  — hash remixing, trailing-zero and popcount intrinsics
//		• alias/   — Vose alias tables for O(1) discrete sampling
//		• sysmem/  — total / available physical memory
//		• seq/     — paired sorting and reset-to-zero helpers
//
// ✨ Ground rules:
//
//   - No shared mutable state: every routine works on caller-owned data.
//   - Errors are package sentinels; branch on them with errors.Is.
//   - Library code is silent unless a logger is injected via SetLogger.
//
// The root package carries the numeric constants used across the host code
// (Eps, Inf, Pi, I, Sqrt2, Sqrt2Inv).
//
//	go get github.com/katalvlaran/sciutil
package sciutil
