//go:build !linux && !darwin
// +build !linux,!darwin

package sysinfo

import (
	"os"

	"github.com/shirou/gopsutil/v3/mem"
)

// genericMemorySource 其他平台统一由 gopsutil 提供
type genericMemorySource struct{}

func platformMemorySource(_ string) MemorySource {
	return genericMemorySource{}
}

func (genericMemorySource) TotalBytes() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func (genericMemorySource) PageSize() (uint64, error) {
	return uint64(os.Getpagesize()), nil
}

func (s genericMemorySource) VMStats() (VMStats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return VMStats{}, err
	}
	pageSize, _ := s.PageSize()
	if pageSize == 0 {
		pageSize = 1
	}
	return VMStats{
		ActivePages: vm.Active / pageSize,
		WiredPages:  vm.Wired / pageSize,
	}, nil
}
