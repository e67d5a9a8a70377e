package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hwinfo/internal/models"
	"hwinfo/internal/sysinfo"
)

func TestLoadAndValidateConfigFlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cpu_temp: false\noutput_format: json\n"), 0o644); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	flags, err := parseFlags([]string{"-config", path, "-cpu-temp", "-format", "Prometheus"})
	if err != nil {
		t.Fatalf("解析参数失败: %v", err)
	}
	cfg, err := loadAndValidateConfig(flags)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if !cfg.CPUTemp {
		t.Errorf("-cpu-temp 应覆盖配置文件")
	}
	if cfg.OutputFormat != models.OutputPrometheus {
		t.Errorf("-format 应覆盖配置文件, 实际 %s", cfg.OutputFormat)
	}
}

func TestLoadAndValidateConfigDefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output_format: prometheus\n"), 0o644); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	flags, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("解析参数失败: %v", err)
	}
	if flags.configPath != "config.yaml" || flags.configSet {
		t.Fatalf("默认配置路径不符: %+v", flags)
	}
	cfg, err := loadAndValidateConfig(flags)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.OutputFormat != models.OutputPrometheus {
		t.Errorf("应读取当前目录的 config.yaml, 实际输出格式 %s", cfg.OutputFormat)
	}
}

func TestLoadAndValidateConfigMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	flags, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("解析参数失败: %v", err)
	}
	cfg, err := loadAndValidateConfig(flags)
	if err != nil {
		t.Fatalf("默认配置文件不存在时应使用默认配置: %v", err)
	}
	if cfg.OutputFormat != models.OutputJSON || cfg.HostRoot != "/" {
		t.Errorf("默认配置不符: %+v", cfg)
	}

	flags, err = parseFlags([]string{"-config", "config.yaml"})
	if err != nil {
		t.Fatalf("解析参数失败: %v", err)
	}
	if _, err := loadAndValidateConfig(flags); err == nil {
		t.Fatalf("显式指定的配置文件不存在时应返回错误")
	}
}

func TestLoadAndValidateConfigRejectsUnknownFormat(t *testing.T) {
	chdir(t, t.TempDir())
	flags, err := parseFlags([]string{"-format", "xml"})
	if err != nil {
		t.Fatalf("解析参数失败: %v", err)
	}
	if _, err := loadAndValidateConfig(flags); err == nil {
		t.Fatalf("未知输出格式应返回错误")
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	cpu := sysinfo.CPUResult{Name: "Test CPU", PhysicalCores: 2, Temperature: sysinfo.TempUnset}
	memory := sysinfo.MemoryResult{Error: "读取物理内存总量失败"}

	if err := writeReport(&buf, models.OutputJSON, cpu, memory); err != nil {
		t.Fatalf("输出失败: %v", err)
	}

	var decoded struct {
		CPU struct {
			Name        string   `json:"name"`
			Temperature *float64 `json:"temperature"`
		} `json:"cpu"`
		Memory sysinfo.MemoryResult `json:"memory"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("解析输出失败: %v\n%s", err, buf.String())
	}
	if decoded.CPU.Name != "Test CPU" || decoded.CPU.Temperature != nil {
		t.Errorf("CPU 输出不符: %s", buf.String())
	}
	if decoded.Memory.Error != memory.Error {
		t.Errorf("内存错误输出不符: %s", buf.String())
	}
}

func TestWriteReportPrometheus(t *testing.T) {
	var buf bytes.Buffer
	cpu := sysinfo.CPUResult{Name: "Test CPU", PhysicalCores: 2, Temperature: 47}
	memory := sysinfo.MemoryResult{BytesTotal: 1024, BytesUsed: 512}

	if err := writeReport(&buf, models.OutputPrometheus, cpu, memory); err != nil {
		t.Fatalf("输出失败: %v", err)
	}
	out := buf.String()
	for _, item := range []string{"hwinfo_cpu_temperature_celsius 47", "hwinfo_memory_used_bytes 512"} {
		if !strings.Contains(out, item) {
			t.Errorf("输出缺少 %q\n%s", item, out)
		}
	}
}

// chdir 切换工作目录并在测试结束时恢复（等价于 Go 1.24 的 t.Chdir）
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取当前目录失败: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换目录失败: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("恢复目录失败: %v", err)
		}
	})
}
