// 本文件用于定义配置模型
package models

// 输出格式
const (
	OutputJSON       = "json"
	OutputPrometheus = "prometheus"
)

// Config 配置结构体
type Config struct {
	CPUTemp      bool   `yaml:"cpu_temp"`      // 是否探测 CPU 温度
	HostRoot     string `yaml:"host_root"`     // 读取 proc 与 sys 的根目录
	OutputFormat string `yaml:"output_format"` // json 或 prometheus
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}
