package utils

import (
	"strings"
	"unicode"
)

// ParsePropLine 匹配形如 "key : value" 的属性行
// key 比较忽略大小写，key 与冒号之间允许任意空白；匹配成功返回去掉首尾空白的值
func ParsePropLine(line, key string) (string, bool) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	key = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(key), ":"))
	if key == "" || len(rest) < len(key) {
		return "", false
	}
	if !strings.EqualFold(rest[:len(key)], key) {
		return "", false
	}
	rest = strings.TrimLeft(rest[len(key):], " \t")
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}
