package sysinfo

import (
	"math"
	"strconv"
	"strings"
)

// Number 表示一次数值解析的结果，解析失败时 Valid 为 false
type Number struct {
	value float64
	valid bool
}

// ParseNumber 把文本解析为浮点数，无法解析或得到 NaN/Inf 时返回无效值
func ParseNumber(s string) Number {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{value: v, valid: true}
}

// Valid 判断是否解析成功
func (n Number) Valid() bool {
	return n.valid
}

// Value 返回解析值，无效时为 0
func (n Number) Value() float64 {
	if !n.valid {
		return 0
	}
	return n.value
}

// KHzToGHz 把千赫兹读数换算为 GHz，无效或非正值返回 0
func KHzToGHz(n Number) float64 {
	return positiveOrZero(n, 1e6)
}

// MHzToGHz 把兆赫兹读数换算为 GHz，无效或非正值返回 0
func MHzToGHz(n Number) float64 {
	return positiveOrZero(n, 1e3)
}

// HzToGHz 把赫兹换算为 GHz
func HzToGHz(hz uint64) float64 {
	return float64(hz) / 1e9
}

func positiveOrZero(n Number, divisor float64) float64 {
	if !n.Valid() || n.Value() <= 0 {
		return 0
	}
	return n.Value() / divisor
}

// ParseCoreCount 解析物理核心数，无法解析或为 0 时按 1 处理
func ParseCoreCount(s string) uint16 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil || v == 0 {
		return 1
	}
	return uint16(v)
}
