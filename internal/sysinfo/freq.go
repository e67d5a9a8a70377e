// 本文件用于解析 cpufreq 频率文件并在多个来源之间回退
package sysinfo

import (
	"io/fs"
	"path"

	"hwinfo/pkg/utils"
)

// CPUFreqPolicyDir 为第一个频率策略组的目录
const CPUFreqPolicyDir = "sys/devices/system/cpu/cpufreq/policy0"

// GetFrequency 依次读取硬件上报与调频上报的千赫兹文件，返回第一个大于 0 的 GHz 值
// 两者都不可用时返回 0
func GetFrequency(fsys fs.FS, primary, fallback string) float64 {
	if ghz := readGHz(fsys, primary); ghz > 0 {
		return ghz
	}
	return readGHz(fsys, fallback)
}

func readGHz(fsys fs.FS, name string) float64 {
	content, ok := utils.ReadFileString(fsys, name)
	if !ok {
		return 0
	}
	return KHzToGHz(ParseNumber(content))
}

// ResolveFrequency 根据是否存在 cpufreq 策略目录选择频率来源
// 没有策略目录时最小与最大频率都取 cpuinfo 中的 MHz 值
func ResolveFrequency(fsys fs.FS, hasScaling bool, mhz string) (minGHz, maxGHz float64) {
	if !hasScaling {
		ghz := MHzToGHz(ParseNumber(mhz))
		return ghz, ghz
	}
	minGHz = GetFrequency(fsys,
		path.Join(CPUFreqPolicyDir, "cpuinfo_min_freq"),
		path.Join(CPUFreqPolicyDir, "scaling_min_freq"))
	maxGHz = GetFrequency(fsys,
		path.Join(CPUFreqPolicyDir, "cpuinfo_max_freq"),
		path.Join(CPUFreqPolicyDir, "scaling_max_freq"))
	return minGHz, maxGHz
}
