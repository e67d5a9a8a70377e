//go:build darwin
// +build darwin

// 本文件用于 macOS 下通过 sysctl 读取 CPU 信息
package sysinfo

import (
	"io/fs"
	"strings"

	"github.com/shoenig/go-m1cpu"
	"golang.org/x/sys/unix"

	"hwinfo/internal/logger"
)

// platformFillCPU macOS 没有 procfs，文件系统参数不使用
func platformFillCPU(_ fs.FS, cpu *CPUResult) {
	appleSilicon := m1cpu.IsAppleSilicon()

	if name, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil {
		cpu.Name = strings.TrimSpace(name)
	}
	if vendor, err := unix.Sysctl("machdep.cpu.vendor"); err == nil {
		cpu.Vendor = strings.TrimSpace(vendor)
	} else if appleSilicon {
		cpu.Vendor = "Apple"
	}
	if cores, err := unix.SysctlUint32("hw.physicalcpu"); err == nil {
		cpu.PhysicalCores = clampUint16(int(cores))
	}

	cpu.FrequencyMin = sysctlGHz("hw.cpufrequency_min")
	cpu.FrequencyMax = sysctlGHz("hw.cpufrequency_max")
	// Apple Silicon 不提供 hw.cpufrequency_*，用能效核与性能核频率代替
	if cpu.FrequencyMax <= 0 && appleSilicon {
		cpu.FrequencyMin = m1cpu.ECoreGHz()
		cpu.FrequencyMax = m1cpu.PCoreGHz()
	}
}

func sysctlGHz(name string) float64 {
	hz, err := unix.SysctlUint64(name)
	if err != nil || hz == 0 {
		logger.Debug("读取 %s 失败: %v", name, err)
		return 0
	}
	return HzToGHz(hz)
}
