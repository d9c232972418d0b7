// Package sysmon samples system-wide CPU and memory utilisation for the
// details view.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	LogicalCPUs int     // logical processors visible to the OS
	CPUPercent  float64 // 0.0 .. 100.0, delta since the previous sample
	MemPercent  float64 // 0.0 .. 100.0
	MemTotal    uint64  // bytes of physical memory
}

// Sample collects a single system-wide snapshot. CPU uses interval=0, so the
// first call in a process reports usage since boot. Fields that cannot be
// read are left at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCPUs = n
	}
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	return s
}
