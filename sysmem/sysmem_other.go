// SPDX-License-Identifier: MIT

//go:build !linux && !darwin

package sysmem

func total() uint64 {
	logger().Debug("memory query not supported on this platform")

	return 0
}

func available() uint64 {
	logger().Debug("memory query not supported on this platform")

	return 0
}
