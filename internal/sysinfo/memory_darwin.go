//go:build darwin
// +build darwin

package sysinfo

import (
	"errors"

	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sys/unix"
)

// darwinMemorySource 总量与页大小来自 sysctl，页统计来自 host_statistics
type darwinMemorySource struct{}

func platformMemorySource(_ string) MemorySource {
	return darwinMemorySource{}
}

func (darwinMemorySource) TotalBytes() (uint64, error) {
	return unix.SysctlUint64("hw.memsize")
}

func (darwinMemorySource) PageSize() (uint64, error) {
	size, err := unix.SysctlUint32("hw.pagesize")
	return uint64(size), err
}

// VMStats gopsutil 以字节返回 active 与 wired，这里换算回页数
func (s darwinMemorySource) VMStats() (VMStats, error) {
	pageSize, err := s.PageSize()
	if err != nil {
		return VMStats{}, err
	}
	if pageSize == 0 {
		return VMStats{}, errors.New("hw.pagesize 为 0")
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return VMStats{}, err
	}
	return VMStats{
		ActivePages: vm.Active / pageSize,
		WiredPages:  vm.Wired / pageSize,
	}, nil
}
