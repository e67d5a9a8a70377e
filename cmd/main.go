// 本文件用于程序启动入口
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"log"
	"os"
	"strings"

	"hwinfo/internal/config"
	"hwinfo/internal/logger"
	"hwinfo/internal/metrics"
	"hwinfo/internal/models"
	"hwinfo/internal/sysinfo"
)

const defaultConfigPath = "config.yaml"

type cliFlags struct {
	configPath string
	configSet  bool // 是否显式指定了 -config
	cpuTemp    bool
	format     string
}

// report 为 JSON 输出结构
type report struct {
	CPU    sysinfo.CPUResult    `json:"cpu"`
	Memory sysinfo.MemoryResult `json:"memory"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("程序退出: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadAndValidateConfig(flags)
	if err != nil {
		return err
	}

	if err := logger.InitLogger(cfg); err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("开始探测: host_root=%s cpu_temp=%v format=%s", cfg.HostRoot, cfg.CPUTemp, cfg.OutputFormat)

	cpu := sysinfo.DetectCPU(sysinfo.CPUOptions{
		CPUTemp:  cfg.CPUTemp,
		HostRoot: cfg.HostRoot,
	})
	memory := sysinfo.DetectMemory(cfg.HostRoot)

	if err := writeReport(out, cfg.OutputFormat, cpu, memory); err != nil {
		logger.Error("%v", err)
		return err
	}
	return nil
}

func parseFlags(args []string) (cliFlags, error) {
	var flags cliFlags
	fs := flag.NewFlagSet("hwinfo", flag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", defaultConfigPath, "配置文件路径")
	fs.BoolVar(&flags.cpuTemp, "cpu-temp", false, "探测 CPU 温度")
	fs.StringVar(&flags.format, "format", "", "输出格式: json 或 prometheus")
	if err := fs.Parse(args); err != nil {
		return flags, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			flags.configSet = true
		}
	})
	return flags, nil
}

// loadAndValidateConfig 命令行参数覆盖配置文件
// 仅当未显式指定 -config 且默认配置文件不存在时使用默认配置
func loadAndValidateConfig(flags cliFlags) (*models.Config, error) {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		if flags.configSet || !errors.Is(err, iofs.ErrNotExist) {
			return nil, err
		}
		cfg = config.DefaultConfig()
	}
	if flags.cpuTemp {
		cfg.CPUTemp = true
	}
	if flags.format != "" {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeReport(out io.Writer, format string, cpu sysinfo.CPUResult, memory sysinfo.MemoryResult) error {
	switch format {
	case models.OutputPrometheus:
		collector := metrics.NewCollector()
		collector.ObserveCPU(cpu)
		collector.ObserveMemory(memory)
		_, err := io.WriteString(out, collector.RenderPrometheus())
		return err
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report{CPU: cpu, Memory: memory}); err != nil {
			return fmt.Errorf("输出探测结果失败: %w", err)
		}
		return nil
	}
}
