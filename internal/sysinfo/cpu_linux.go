//go:build linux
// +build linux

package sysinfo

import "io/fs"

// platformFillCPU Linux 下读取 procfs 与 sysfs
func platformFillCPU(fsys fs.FS, cpu *CPUResult) {
	fillCPUFromProcfs(fsys, cpu)
}
