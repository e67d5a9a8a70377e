package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"hwinfo/internal/models"
)

const (
	defaultHostRoot = "/"
	defaultLogLevel = "info"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// DefaultConfig 返回未提供配置文件时使用的配置
func DefaultConfig() *models.Config {
	cfg := &models.Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig 加载配置文件
func LoadConfig(configFile string) (*models.Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config models.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *models.Config) {
	config.HostRoot = strings.TrimSpace(config.HostRoot)
	if config.HostRoot == "" {
		config.HostRoot = defaultHostRoot
	}
	config.OutputFormat = strings.ToLower(strings.TrimSpace(config.OutputFormat))
	if config.OutputFormat == "" {
		config.OutputFormat = models.OutputJSON
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
}

// ValidateConfig 验证配置
func ValidateConfig(config *models.Config) error {
	if config == nil {
		return fmt.Errorf("配置不能为空")
	}
	if !filepath.IsAbs(config.HostRoot) {
		return fmt.Errorf("host_root 必须是绝对路径: %s", config.HostRoot)
	}
	switch config.OutputFormat {
	case models.OutputJSON, models.OutputPrometheus:
	default:
		return fmt.Errorf("不支持的输出格式: %s", config.OutputFormat)
	}
	if _, ok := validLogLevels[config.LogLevel]; !ok {
		return fmt.Errorf("不支持的日志级别: %s", config.LogLevel)
	}
	return nil
}
