// 本文件用于内存探测流程：总量、页大小、虚拟内存统计依次查询，任一步失败即终止
package sysinfo

import (
	"hwinfo/internal/logger"
)

// VMStats 为活跃页与常驻（不可换出）页数量
type VMStats struct {
	ActivePages uint64
	WiredPages  uint64
}

// MemorySource 提供内存探测所需的系统查询
type MemorySource interface {
	TotalBytes() (uint64, error)
	PageSize() (uint64, error)
	VMStats() (VMStats, error)
}

// DetectMemory 使用当前平台的查询来源探测内存
// hostRoot 仅影响从文件系统读取的页统计，为空时读取本机 /proc
func DetectMemory(hostRoot string) MemoryResult {
	return DetectMemoryFrom(platformMemorySource(hostRoot))
}

// DetectMemoryFrom 按顺序执行查询，失败时写入 Error 并立即返回
func DetectMemoryFrom(src MemorySource) MemoryResult {
	var result MemoryResult

	total, err := src.TotalBytes()
	if err != nil || total == 0 {
		return memoryFailure(result, "读取物理内存总量失败", err)
	}
	result.BytesTotal = total

	pageSize, err := src.PageSize()
	if err != nil || pageSize == 0 {
		return memoryFailure(result, "读取内存页大小失败", err)
	}

	stats, err := src.VMStats()
	if err != nil {
		return memoryFailure(result, "读取虚拟内存统计失败", err)
	}

	result.BytesUsed = (stats.ActivePages + stats.WiredPages) * pageSize
	return result
}

func memoryFailure(result MemoryResult, msg string, err error) MemoryResult {
	if err != nil {
		logger.Warn("%s: %v", msg, err)
	} else {
		logger.Warn("%s", msg)
	}
	result.Error = msg
	return result
}
