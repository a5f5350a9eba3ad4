// SPDX-License-Identifier: MIT

package sysmem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/sciutil/internal/logging"
)

// Total returns the total physical memory in bytes, or 0 if unknown.
func Total() uint64 {
	return total()
}

// Available returns the physical memory currently available to new
// allocations in bytes, or 0 if unknown.
func Available() uint64 {
	return available()
}

// /proc/meminfo keys and unit.
const (
	keyMemTotal     = "MemTotal"
	keyMemAvailable = "MemAvailable"
	kib             = 1024
)

var errMeminfoKey = errors.New("sysmem: key not found in meminfo")

// parseMeminfo returns the value of key, converted to bytes, from a
// /proc/meminfo style stream ("Key:   12345 kB" per line).
func parseMeminfo(r io.Reader, key string) (uint64, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name, rest, ok := strings.Cut(sc.Text(), ":")
		if !ok || name != key {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, fmt.Errorf("sysmem: %s: empty value", key)
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("sysmem: %s: %w", key, err)
		}
		if len(fields) > 1 && fields[1] == "kB" {
			v *= kib
		}

		return v, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("sysmem: read meminfo: %w", err)
	}

	return 0, fmt.Errorf("%w: %s", errMeminfoKey, key)
}

func logger() *zap.Logger {
	return logging.Named("sysmem")
}
