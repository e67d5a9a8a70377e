//go:build !linux && !darwin
// +build !linux,!darwin

package sysinfo

import (
	"io/fs"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"hwinfo/internal/logger"
)

// platformFillCPU 其他平台由 gopsutil 提供 CPU 信息，仅取第一个 CPU
func platformFillCPU(_ fs.FS, result *CPUResult) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		logger.Debug("读取 CPU 信息失败: %v", err)
		return
	}
	info := infos[0]
	result.Name = strings.TrimSpace(info.ModelName)
	result.Vendor = strings.TrimSpace(info.VendorID)
	result.PhysicalCores = clampUint16(int(info.Cores))
	ghz := MHzToGHz(Number{value: info.Mhz, valid: true})
	result.FrequencyMin, result.FrequencyMax = ghz, ghz
}
