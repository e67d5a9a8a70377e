// 本文件用于把探测结果输出为 Prometheus 文本格式

package metrics

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"hwinfo/internal/sysinfo"
)

// Collector 保存最近一次探测结果与探测计数，并以 Prometheus 文本格式输出。
type Collector struct {
	cpuDetectionsTotal      atomic.Uint64
	memoryDetectionsTotal   atomic.Uint64
	memoryFailuresTotal atomic.Uint64

	mu     sync.RWMutex
	cpu    *sysinfo.CPUResult
	memory *sysinfo.MemoryResult
}

// NewCollector 创建指标收集器。
func NewCollector() *Collector {
	return &Collector{}
}

// ObserveCPU 记录一次 CPU 探测结果。
func (c *Collector) ObserveCPU(result sysinfo.CPUResult) {
	if c == nil {
		return
	}
	c.cpuDetectionsTotal.Add(1)
	c.mu.Lock()
	c.cpu = &result
	c.mu.Unlock()
}

// ObserveMemory 记录一次内存探测结果。
func (c *Collector) ObserveMemory(result sysinfo.MemoryResult) {
	if c == nil {
		return
	}
	c.memoryDetectionsTotal.Add(1)
	if result.Error != "" {
		c.memoryFailuresTotal.Add(1)
	}
	c.mu.Lock()
	c.memory = &result
	c.mu.Unlock()
}

// RenderPrometheus 输出 Prometheus 文本格式指标。
func (c *Collector) RenderPrometheus() string {
	if c == nil {
		return ""
	}
	var builder strings.Builder

	c.mu.RLock()
	cpu := c.cpu
	memory := c.memory
	c.mu.RUnlock()

	writeMetricHeader(&builder, "hwinfo_cpu_detections_total", "counter", "CPU 探测次数")
	writeCounter(&builder, "hwinfo_cpu_detections_total", c.cpuDetectionsTotal.Load(), nil)
	writeMetricHeader(&builder, "hwinfo_memory_detections_total", "counter", "内存探测次数")
	writeCounter(&builder, "hwinfo_memory_detections_total", c.memoryDetectionsTotal.Load(), nil)
	writeMetricHeader(&builder, "hwinfo_memory_detection_failures_total", "counter", "内存探测失败次数")
	writeCounter(&builder, "hwinfo_memory_detection_failures_total", c.memoryFailuresTotal.Load(), nil)

	if cpu != nil {
		writeCPU(&builder, *cpu)
	}
	if memory != nil {
		writeMemory(&builder, *memory)
	}
	return builder.String()
}

func writeCPU(builder *strings.Builder, cpu sysinfo.CPUResult) {
	writeMetricHeader(builder, "hwinfo_cpu_info", "gauge", "CPU 型号与厂商")
	writeGaugeFloat(builder, "hwinfo_cpu_info", 1, map[string]string{
		"name":   cpu.Name,
		"vendor": cpu.Vendor,
	})

	writeMetricHeader(builder, "hwinfo_cpu_cores", "gauge", "CPU 核心数")
	writeGaugeInt(builder, "hwinfo_cpu_cores", int64(cpu.PhysicalCores), map[string]string{"kind": "physical"})
	writeGaugeInt(builder, "hwinfo_cpu_cores", int64(cpu.LogicalCores), map[string]string{"kind": "logical"})
	writeGaugeInt(builder, "hwinfo_cpu_cores", int64(cpu.OnlineCores), map[string]string{"kind": "online"})

	// 0 表示未知，不输出
	if cpu.FrequencyMin > 0 || cpu.FrequencyMax > 0 {
		writeMetricHeader(builder, "hwinfo_cpu_frequency_ghz", "gauge", "CPU 频率范围")
		if cpu.FrequencyMin > 0 {
			writeGaugeFloat(builder, "hwinfo_cpu_frequency_ghz", cpu.FrequencyMin, map[string]string{"bound": "min"})
		}
		if cpu.FrequencyMax > 0 {
			writeGaugeFloat(builder, "hwinfo_cpu_frequency_ghz", cpu.FrequencyMax, map[string]string{"bound": "max"})
		}
	}

	if cpu.HasTemperature() {
		writeMetricHeader(builder, "hwinfo_cpu_temperature_celsius", "gauge", "CPU 温度")
		writeGaugeFloat(builder, "hwinfo_cpu_temperature_celsius", cpu.Temperature, nil)
	}
}

// 出错时数值字段不可信，只输出错误信息
func writeMemory(builder *strings.Builder, memory sysinfo.MemoryResult) {
	if memory.Error != "" {
		writeMetricHeader(builder, "hwinfo_memory_detection_error", "gauge", "最近一次内存探测错误")
		writeGaugeFloat(builder, "hwinfo_memory_detection_error", 1, map[string]string{
			"error": normalizeMetricLabel(memory.Error),
		})
		return
	}
	writeMetricHeader(builder, "hwinfo_memory_total_bytes", "gauge", "物理内存总量")
	writeCounter(builder, "hwinfo_memory_total_bytes", memory.BytesTotal, nil)
	writeMetricHeader(builder, "hwinfo_memory_used_bytes", "gauge", "已用内存（活跃页与常驻页）")
	writeCounter(builder, "hwinfo_memory_used_bytes", memory.BytesUsed, nil)
}

func writeMetricHeader(builder *strings.Builder, metric, metricType, help string) {
	builder.WriteString("# HELP ")
	builder.WriteString(metric)
	builder.WriteByte(' ')
	builder.WriteString(help)
	builder.WriteByte('\n')
	builder.WriteString("# TYPE ")
	builder.WriteString(metric)
	builder.WriteByte(' ')
	builder.WriteString(metricType)
	builder.WriteByte('\n')
}

// writeCounter 也用于 uint64 类型的 gauge
func writeCounter(builder *strings.Builder, metric string, value uint64, labels map[string]string) {
	builder.WriteString(metric)
	writeLabels(builder, labels)
	builder.WriteByte(' ')
	builder.WriteString(strconv.FormatUint(value, 10))
	builder.WriteByte('\n')
}

func writeGaugeInt(builder *strings.Builder, metric string, value int64, labels map[string]string) {
	builder.WriteString(metric)
	writeLabels(builder, labels)
	builder.WriteByte(' ')
	builder.WriteString(strconv.FormatInt(value, 10))
	builder.WriteByte('\n')
}

func writeGaugeFloat(builder *strings.Builder, metric string, value float64, labels map[string]string) {
	builder.WriteString(metric)
	writeLabels(builder, labels)
	builder.WriteByte(' ')
	builder.WriteString(trimFloat(value))
	builder.WriteByte('\n')
}

func writeLabels(builder *strings.Builder, labels map[string]string) {
	if len(labels) == 0 {
		return
	}
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	builder.WriteByte('{')
	for idx, key := range keys {
		if idx > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(key)
		builder.WriteString("=\"")
		builder.WriteString(escapeLabelValue(labels[key]))
		builder.WriteByte('"')
	}
	builder.WriteByte('}')
}

func normalizeMetricLabel(value string) string {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "unknown"
	}
	clean = strings.Join(strings.Fields(clean), " ")
	if len(clean) > 120 {
		clean = clean[:120]
	}
	return clean
}

func escapeLabelValue(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
	)
	return replacer.Replace(value)
}

func trimFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
