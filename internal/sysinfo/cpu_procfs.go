package sysinfo

import (
	"io/fs"

	"hwinfo/internal/logger"
	"hwinfo/pkg/utils"
)

// CPUInfoPath 为 cpuinfo 文本来源
const CPUInfoPath = "proc/cpuinfo"

// fillCPUFromProcfs 从 /proc/cpuinfo 与 cpufreq 目录读取 CPU 信息
func fillCPUFromProcfs(fsys fs.FS, cpu *CPUResult) {
	physicalCores, mhz := scanCPUInfoFile(fsys, cpu)
	cpu.PhysicalCores = ParseCoreCount(physicalCores)

	hasScaling := utils.IsDirectory(fsys, CPUFreqPolicyDir)
	if !hasScaling {
		logger.Debug("未找到 %s，使用 cpuinfo 中的频率", CPUFreqPolicyDir)
	}
	cpu.FrequencyMin, cpu.FrequencyMax = ResolveFrequency(fsys, hasScaling, mhz)
}

// scanCPUInfoFile 打开失败时直接返回空值，由其他来源继续填充
func scanCPUInfoFile(fsys fs.FS, cpu *CPUResult) (physicalCores, mhz string) {
	f, err := fsys.Open(CPUInfoPath)
	if err != nil {
		logger.Debug("打开 %s 失败: %v", CPUInfoPath, err)
		return "", ""
	}
	defer f.Close()
	return ScanCPUInfo(f, cpu)
}
