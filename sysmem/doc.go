// Package sysmem reports total and currently available physical memory,
// which solvers use to size determinant batches and hash tables.
//
// Sources:
//   - Linux:  /proc/meminfo (MemTotal, MemAvailable), falling back to sysinfo(2).
//   - Darwin: sysctl hw.memsize for the total, vm.page_free_count × hw.pagesize
//     for availability (free pages only, a lower bound).
//   - Others: unknown.
//
// A failed query is not an error: the functions return 0, meaning
// "unknown", and leave a debug entry on the injected logger.
package sysmem
