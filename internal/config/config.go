package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"cpu-governor/internal/cpufreq"
	"cpu-governor/internal/models"
)

const defaultLogLevel = "warn"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// LoadConfig 加载配置文件，configFile 为空时只返回默认配置
func LoadConfig(configFile string) (*models.Config, error) {
	var config models.Config
	if strings.TrimSpace(configFile) != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	ApplyDefaults(&config)
	return &config, nil
}

// ApplyDefaults 为空字段填充默认值
func ApplyDefaults(config *models.Config) {
	config.CPURoot = strings.TrimSpace(config.CPURoot)
	if config.CPURoot == "" {
		config.CPURoot = cpufreq.DefaultRoot
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
	config.LogFile = strings.TrimSpace(config.LogFile)
}

// ValidateConfig 验证配置
func ValidateConfig(config *models.Config) error {
	if config.CPURoot == "" {
		return fmt.Errorf("CPU 根目录不能为空")
	}
	if !validLogLevels[config.LogLevel] {
		return fmt.Errorf("不支持的日志级别: %s", config.LogLevel)
	}
	return nil
}
