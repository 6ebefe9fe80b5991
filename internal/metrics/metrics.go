// Package metrics reads local host resource utilization: CPU, memory, and
// disk, each as a percentage in [0, 100].
//
// Unlike the network probes, the provider is treated as always available:
// a host that cannot read its own /proc is a fatal startup condition, not a
// per-tick one, so the constructor self-checks and Read has no error path.
package metrics

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/pidash/pidash/internal/errors"
)

// Usage is one reading of host utilization percentages.
type Usage struct {
	CPU  float64
	Mem  float64
	Disk float64
}

// Provider supplies host utilization readings.
type Provider interface {
	Read() Usage
}

// Host reads utilization from the local machine via gopsutil.
type Host struct {
	diskPath string
}

// NewHost creates a provider rooted at diskPath (usually "/") and verifies
// the underlying counters are readable.
func NewHost(diskPath string) (*Host, error) {
	if diskPath == "" {
		diskPath = "/"
	}
	if _, err := mem.VirtualMemory(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read memory statistics",
			"pidash needs access to host memory counters")
	}
	if _, err := disk.Usage(diskPath); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read disk usage for "+diskPath,
			"Check the disk path in .pidash.yaml")
	}
	// Prime the CPU counter; the first delta-based reading needs a
	// previous observation.
	_, _ = cpu.Percent(0, false)
	return &Host{diskPath: diskPath}, nil
}

// Read implements Provider. Individual counter hiccups degrade to zero for
// that field rather than failing the tick.
func (h *Host) Read() Usage {
	var u Usage

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		u.CPU = clampPct(pcts[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		u.Mem = clampPct(vm.UsedPercent)
	}
	if du, err := disk.Usage(h.diskPath); err == nil {
		u.Disk = clampPct(du.UsedPercent)
	}
	return u
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
