package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	Port         string `yaml:"port"`
	DatabasePath string `yaml:"database_path"`
	GinMode      string `yaml:"gin_mode"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	BackupPath   string `yaml:"backup_path"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 若设置了 CONFIG_FILE，则先读取 YAML 文件，再由环境变量覆盖。
func Load() (AppConfig, error) {
	var cfg AppConfig

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		cfg = fileCfg
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFile 读取 YAML 配置文件，不做默认值填充
func LoadFile(path string) (AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	override := func(dst *string, key string) {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			*dst = value
		}
	}

	override(&c.Port, "PORT")
	override(&c.ListenAddr, "LISTEN_ADDR")
	override(&c.DatabasePath, "DATABASE_PATH")
	override(&c.GinMode, "GIN_MODE")
	override(&c.LogLevel, "LOG_LEVEL")
	override(&c.LogFormat, "LOG_FORMAT")
	override(&c.BackupPath, "BACKUP_PATH")
}

func (c *AppConfig) applyDefaults() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}

	if strings.TrimSpace(c.DatabasePath) == "" {
		c.DatabasePath = "liftlog.db"
	}

	if strings.TrimSpace(c.GinMode) == "" {
		c.GinMode = "release"
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "console" {
		c.LogFormat = "json"
	}

	c.BackupPath = strings.TrimSpace(c.BackupPath)
}
