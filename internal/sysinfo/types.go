// 本文件用于定义 CPU 与内存探测结果
package sysinfo

import (
	"encoding/json"
	"math"
)

// TempUnset 表示温度未探测，与真实测得的 0°C 区分
const TempUnset = -math.MaxFloat64

// CPUResult 表示 CPU 探测结果，字段在对应来源成功时才会被覆盖
type CPUResult struct {
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor"`
	PhysicalCores uint16  `json:"physicalCores"`
	LogicalCores  uint16  `json:"logicalCores"`
	OnlineCores   uint16  `json:"onlineCores"`
	FrequencyMin  float64 `json:"frequencyMin"` // GHz，0 表示未知
	FrequencyMax  float64 `json:"frequencyMax"` // GHz，0 表示未知
	Temperature   float64 `json:"-"`            // °C 或 TempUnset
}

// HasTemperature 判断温度是否已探测
func (c CPUResult) HasTemperature() bool {
	return c.Temperature != TempUnset
}

// MarshalJSON 未探测的温度输出为 null
func (c CPUResult) MarshalJSON() ([]byte, error) {
	type plain CPUResult
	out := struct {
		plain
		Temperature *float64 `json:"temperature"`
	}{plain: plain(c)}
	if c.HasTemperature() {
		temp := c.Temperature
		out.Temperature = &temp
	}
	return json.Marshal(out)
}

// MemoryResult 表示内存探测结果，仅在 Error 为空时数值字段可信
type MemoryResult struct {
	BytesTotal uint64 `json:"bytesTotal"`
	BytesUsed  uint64 `json:"bytesUsed"`
	Error      string `json:"error,omitempty"`
}

// Sensor 表示一个具名温度读数
type Sensor struct {
	Name  string
	Value float64
}
