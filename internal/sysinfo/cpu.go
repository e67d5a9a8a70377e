// 本文件用于组合各个来源生成 CPU 探测结果
package sysinfo

import (
	"io/fs"
	"os"
	"runtime"

	"github.com/tklauser/numcpus"

	"hwinfo/internal/logger"
)

// CoreCounter 返回已配置与当前在线的逻辑核心数
type CoreCounter interface {
	Configured() int
	Online() int
}

// cpuFiller 填充名称、厂商、物理核心数与频率
type cpuFiller func(fsys fs.FS, cpu *CPUResult)

// CPUOptions 控制 CPU 探测行为，零值字段使用系统默认实现
type CPUOptions struct {
	CPUTemp  bool
	HostRoot string
	FS       fs.FS
	Sensors  SensorSource
	Counter  CoreCounter
	fill     cpuFiller
}

// CPUDetector 负责一次完整的 CPU 探测，不在调用之间保留任何状态
type CPUDetector struct {
	cpuTemp bool
	fsys    fs.FS
	sensors SensorSource
	counter CoreCounter
	fill    cpuFiller
}

// NewCPUDetector 创建 CPU 探测器
func NewCPUDetector(opts CPUOptions) *CPUDetector {
	fsys := opts.FS
	if fsys == nil {
		root := opts.HostRoot
		if root == "" {
			root = "/"
		}
		fsys = os.DirFS(root)
	}
	sensors := opts.Sensors
	if sensors == nil {
		sensors = HostSensors
	}
	counter := opts.Counter
	if counter == nil {
		counter = SystemCoreCounter{}
	}
	fill := opts.fill
	if fill == nil {
		fill = platformFillCPU
	}
	return &CPUDetector{
		cpuTemp: opts.CPUTemp,
		fsys:    fsys,
		sensors: sensors,
		counter: counter,
		fill:    fill,
	}
}

// DetectCPU 使用给定选项执行一次 CPU 探测
func DetectCPU(opts CPUOptions) CPUResult {
	return NewCPUDetector(opts).Detect()
}

// Detect 执行探测，任何来源失败都只会让对应字段保持未知值
func (d *CPUDetector) Detect() CPUResult {
	var cpu CPUResult

	// 未开启温度探测时不触发传感器枚举
	if d.cpuTemp {
		cpu.Temperature = SelectCPUTemperature(d.sensors())
	} else {
		cpu.Temperature = TempUnset
	}

	d.fill(d.fsys, &cpu)
	if cpu.PhysicalCores == 0 {
		cpu.PhysicalCores = 1
	}

	cpu.LogicalCores = clampUint16(d.counter.Configured())
	cpu.OnlineCores = clampUint16(d.counter.Online())

	logger.Debug("CPU 探测完成: name=%q vendor=%q cores=%d/%d/%d freq=%.2f-%.2fGHz",
		cpu.Name, cpu.Vendor, cpu.PhysicalCores, cpu.LogicalCores, cpu.OnlineCores,
		cpu.FrequencyMin, cpu.FrequencyMax)
	return cpu
}

// SystemCoreCounter 通过 numcpus 查询内核的核心数，查询失败时退回 runtime.NumCPU
type SystemCoreCounter struct{}

// Configured 返回已配置的逻辑核心数
func (SystemCoreCounter) Configured() int {
	n, err := numcpus.GetConfigured()
	if err != nil || n <= 0 {
		logger.Debug("读取已配置核心数失败: %v", err)
		return runtime.NumCPU()
	}
	return n
}

// Online 返回当前在线的逻辑核心数
func (SystemCoreCounter) Online() int {
	n, err := numcpus.GetOnline()
	if err != nil || n <= 0 {
		logger.Debug("读取在线核心数失败: %v", err)
		return runtime.NumCPU()
	}
	return n
}

func clampUint16(n int) uint16 {
	switch {
	case n <= 0:
		return 0
	case n > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(n)
	}
}
