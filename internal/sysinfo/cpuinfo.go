// 本文件用于扫描 /proc/cpuinfo 并提取第一个 CPU 块的字段
package sysinfo

import (
	"bufio"
	"io"

	"hwinfo/internal/logger"
	"hwinfo/pkg/utils"
)

type scanState int

const (
	beforeName scanState = iota
	inBlock
	scanDone
)

// cpuInfoFields 保存扫描过程中的累积文本
type cpuInfoFields struct {
	cpu           *CPUResult
	physicalCores string
	mhz           string
}

// cpuInfoPattern 描述一条 "key : value" 匹配规则及其目标字段
type cpuInfoPattern struct {
	key    string
	target func(f *cpuInfoFields) *string
}

// 顺序即优先级，每行只消费第一条匹配的规则
var cpuInfoPatterns = []cpuInfoPattern{
	{key: "model name :", target: func(f *cpuInfoFields) *string { return &f.cpu.Name }},
	{key: "vendor_id :", target: func(f *cpuInfoFields) *string { return &f.cpu.Vendor }},
	{key: "cpu cores :", target: func(f *cpuInfoFields) *string { return &f.physicalCores }},
	{key: "cpu MHz :", target: func(f *cpuInfoFields) *string { return &f.mhz }},
	// Android 等 ARM 平台只提供 Hardware
	{key: "Hardware :", target: func(f *cpuInfoFields) *string { return &f.cpu.Name }},
}

// ScanCPUInfo 读取 cpuinfo 文本，把名称与厂商写入 cpu，并返回物理核心数与 MHz 原始文本
// 名称已填充后遇到空行即停止，之后的 CPU 块不会被读取
// 读取出错时保留已解析的字段
func ScanCPUInfo(r io.Reader, cpu *CPUResult) (physicalCores, mhz string) {
	fields := &cpuInfoFields{cpu: cpu}
	state := beforeName

	scanner := bufio.NewScanner(r)
	for state != scanDone && scanner.Scan() {
		line := scanner.Text()
		if state == inBlock && line == "" {
			state = scanDone
			continue
		}
		matchCPUInfoLine(line, fields)
		if state == beforeName && cpu.Name != "" {
			state = inBlock
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Debug("读取 cpuinfo 失败: %v", err)
	}
	return fields.physicalCores, fields.mhz
}

// matchCPUInfoLine 按顺序尝试规则，已有值的目标字段不会被覆盖
func matchCPUInfoLine(line string, fields *cpuInfoFields) {
	for _, pattern := range cpuInfoPatterns {
		target := pattern.target(fields)
		if *target != "" {
			continue
		}
		if value, ok := utils.ParsePropLine(line, pattern.key); ok {
			*target = value
			return
		}
	}
}
