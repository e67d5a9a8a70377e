// 本文件用于文件读取与存在性判断的通用工具函数
package utils

import (
	"io/fs"
	"path"
	"strings"
)

// ReadFileString 读取整个文件内容，失败时返回 false 而不是错误
func ReadFileString(fsys fs.FS, name string) (string, bool) {
	if fsys == nil {
		return "", false
	}
	data, err := fs.ReadFile(fsys, cleanName(name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// IsDirectory 检查路径是否为目录
func IsDirectory(fsys fs.FS, name string) bool {
	if fsys == nil {
		return false
	}
	info, err := fs.Stat(fsys, cleanName(name))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// cleanName 把绝对路径转换为 fs.FS 可接受的相对路径
func cleanName(name string) string {
	name = strings.TrimLeft(path.Clean("/"+name), "/")
	if name == "" {
		return "."
	}
	return name
}
