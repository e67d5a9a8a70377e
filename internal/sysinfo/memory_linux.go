//go:build linux
// +build linux

package sysinfo

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/procfs"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// linuxMemorySource 总量来自 sysinfo(2)，页大小来自 sysconf，页统计来自 /proc/meminfo
type linuxMemorySource struct {
	procMount string
}

// platformMemorySource 页统计读取 hostRoot 下的 proc 目录
func platformMemorySource(hostRoot string) MemorySource {
	if hostRoot == "" {
		return linuxMemorySource{procMount: procfs.DefaultMountPoint}
	}
	return linuxMemorySource{procMount: filepath.Join(hostRoot, "proc")}
}

func (s linuxMemorySource) TotalBytes() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	return uint64(info.Totalram) * uint64(info.Unit), nil
}

func (s linuxMemorySource) PageSize() (uint64, error) {
	size, err := sysconf.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil {
		return 0, err
	}
	if size <= 0 {
		return 0, fmt.Errorf("无效的页大小: %d", size)
	}
	return uint64(size), nil
}

// VMStats Linux 没有 wired 计数，以 Unevictable 代替
func (s linuxMemorySource) VMStats() (VMStats, error) {
	pageSize, err := s.PageSize()
	if err != nil {
		return VMStats{}, err
	}
	fs, err := procfs.NewFS(s.procMount)
	if err != nil {
		return VMStats{}, err
	}
	info, err := fs.Meminfo()
	if err != nil {
		return VMStats{}, err
	}
	if info.Active == nil {
		return VMStats{}, fmt.Errorf("meminfo 缺少 Active 字段")
	}
	stats := VMStats{ActivePages: *info.Active * 1024 / pageSize}
	if info.Unevictable != nil {
		stats.WiredPages = *info.Unevictable * 1024 / pageSize
	}
	return stats, nil
}
