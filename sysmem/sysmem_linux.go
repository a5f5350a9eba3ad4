// SPDX-License-Identifier: MIT

//go:build linux

package sysmem

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// meminfoPath is a variable so tests can point it elsewhere.
var meminfoPath = "/proc/meminfo"

func total() uint64 {
	v, err := readMeminfo(keyMemTotal)
	if err == nil {
		return v
	}
	logger().Debug("meminfo unavailable, using sysinfo", zap.String("key", keyMemTotal), zap.Error(err))

	info, err := sysinfo()
	if err != nil {
		return 0
	}

	return uint64(info.Totalram) * unit(info)
}

// available prefers MemAvailable, which counts reclaimable page cache.
// The sysinfo fallback (free + buffers) underestimates it.
func available() uint64 {
	v, err := readMeminfo(keyMemAvailable)
	if err == nil {
		return v
	}
	logger().Debug("meminfo unavailable, using sysinfo", zap.String("key", keyMemAvailable), zap.Error(err))

	info, err := sysinfo()
	if err != nil {
		return 0
	}

	return (uint64(info.Freeram) + uint64(info.Bufferram)) * unit(info)
}

func readMeminfo(key string) (uint64, error) {
	f, err := os.Open(meminfoPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return parseMeminfo(f, key)
}

func sysinfo() (*unix.Sysinfo_t, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		logger().Debug("sysinfo failed, memory unknown", zap.Error(err))

		return nil, err
	}

	return &info, nil
}

// unit is the byte size of the sysinfo memory fields; kernels before 2.3.23 report 0.
func unit(info *unix.Sysinfo_t) uint64 {
	if info.Unit == 0 {
		return 1
	}

	return uint64(info.Unit)
}
