// SPDX-License-Identifier: MIT

//go:build darwin

package sysmem

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func total() uint64 {
	v, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		logger().Debug("sysctl hw.memsize failed, memory unknown", zap.Error(err))

		return 0
	}

	return v
}

// available counts free pages only; inactive and purgeable pages are not
// reported through sysctl, so the figure is a lower bound.
func available() uint64 {
	free, err := unix.SysctlUint32("vm.page_free_count")
	if err != nil {
		logger().Debug("sysctl vm.page_free_count failed, available memory unknown", zap.Error(err))

		return 0
	}
	size, err := unix.SysctlUint32("hw.pagesize")
	if err != nil {
		logger().Debug("sysctl hw.pagesize failed, available memory unknown", zap.Error(err))

		return 0
	}

	return uint64(free) * uint64(size)
}
