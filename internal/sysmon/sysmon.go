// Package sysmon samples host-wide CPU and memory usage and identifies the
// processor, so benchmark output and calibration profiles can be read in the
// context of the machine that produced them.
package sysmon

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = clampPercent(vmem.UsedPercent)
		s.MemTotal = vmem.Total
	}
	return s
}

// CPUModel returns the processor model name reported by the OS, or a
// GOARCH-and-core-count label when the platform does not expose one.
func CPUModel() string {
	infos, err := cpu.Info()
	if err == nil {
		for _, info := range infos {
			if name := strings.TrimSpace(info.ModelName); name != "" {
				return name
			}
		}
	}
	return fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
