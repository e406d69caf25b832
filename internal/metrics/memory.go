// Package metrics reads process-level runtime statistics used to report the
// memory cost of a reduction run.
package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta reports the growth between two snapshots. Counters that shrank, for
// example after a GC cycle, are reported as zero.
func Delta(before, after MemorySnapshot) MemorySnapshot {
	sub := func(a, b uint64) uint64 {
		if b < a {
			return 0
		}
		return b - a
	}
	return MemorySnapshot{
		HeapAlloc:    sub(before.HeapAlloc, after.HeapAlloc),
		HeapSys:      sub(before.HeapSys, after.HeapSys),
		Sys:          sub(before.Sys, after.Sys),
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: sub(before.PauseTotalNs, after.PauseTotalNs),
		HeapObjects:  sub(before.HeapObjects, after.HeapObjects),
	}
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
