package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"hwinfo/internal/logger"
)

// knownCPUSensors 为名称中不含 cpu 的已知 CPU 温度传感器
var knownCPUSensors = []string{
	"k10temp",  // AMD
	"coretemp", // Intel
}

// SensorSource 返回按枚举顺序排列的温度读数
type SensorSource func() []Sensor

// SelectCPUTemperature 返回第一个名称包含 cpu 或等于已知传感器名的读数，没有则返回 TempUnset
func SelectCPUTemperature(sensors []Sensor) float64 {
	for _, sensor := range sensors {
		if isCPUSensor(sensor.Name) {
			return sensor.Value
		}
	}
	return TempUnset
}

func isCPUSensor(name string) bool {
	if strings.Contains(name, "cpu") {
		return true
	}
	for _, known := range knownCPUSensors {
		if name == known {
			return true
		}
	}
	return false
}

// HostSensors 通过 gopsutil 枚举温度传感器，部分传感器读取失败时仍返回已得到的读数
func HostSensors() []Sensor {
	temps, err := host.SensorsTemperatures()
	if err != nil {
		logger.Debug("枚举温度传感器返回错误: %v", err)
	}
	sensors := make([]Sensor, 0, len(temps))
	for _, temp := range temps {
		sensors = append(sensors, Sensor{Name: temp.SensorKey, Value: temp.Temperature})
	}
	return sensors
}
