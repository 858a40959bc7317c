// Package config 提供 TOML 配置加载与环境变量覆盖
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 基础配置结构
type Config struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 服务版本
	Version string `mapstructure:"version"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// HTTP 服务配置
	HTTP HTTPConfig `mapstructure:"http"`
	// 日志配置
	Logger LoggerConfig `mapstructure:"logger"`
	// 指标配置
	Metrics MetricsConfig `mapstructure:"metrics"`
	// 模拟引擎配置
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	// 监听地址
	Host string `mapstructure:"host"`
	// 监听端口
	Port int `mapstructure:"port"`
	// 读超时（秒）
	ReadTimeout int `mapstructure:"read_timeout"`
	// 写超时（秒）
	WriteTimeout int `mapstructure:"write_timeout"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	// 日志级别
	Level string `mapstructure:"level"`
	// 输出格式：json 或 text
	Format string `mapstructure:"format"`
	// 输出目标：stdout, file, both
	Output string `mapstructure:"output"`
	// 文件路径
	FilePath string `mapstructure:"file_path"`
	// 最大文件大小（MB）
	MaxSize int `mapstructure:"max_size"`
	// 最大备份文件数
	MaxBackups int `mapstructure:"max_backups"`
	// 最大保留天数
	MaxAge int `mapstructure:"max_age"`
	// 是否压缩
	Compress bool `mapstructure:"compress"`
	// 是否输出调用者信息
	WithCaller bool `mapstructure:"with_caller"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 是否启用
	Enabled bool `mapstructure:"enabled"`
	// 指标路径
	Path string `mapstructure:"path"`
}

// SimulationConfig 模拟引擎配置
type SimulationConfig struct {
	// 单次请求允许的最大路径数
	MaxPaths int `mapstructure:"max_paths"`
	// 单次请求允许的最大时间步数
	MaxSteps int `mapstructure:"max_steps"`
	// 采样器类型：lcg, rand
	Sampler string `mapstructure:"sampler"`
}

// Load 从 TOML 文件加载配置，使用默认值，支持环境变量覆盖
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// 配置文件缺失时退回默认值 + 环境变量
	_ = v.ReadInConfig()

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTP.Port)
	}
	if c.Simulation.MaxPaths <= 0 {
		return fmt.Errorf("invalid simulation max_paths: %d", c.Simulation.MaxPaths)
	}
	if c.Simulation.MaxSteps <= 0 {
		return fmt.Errorf("invalid simulation max_steps: %d", c.Simulation.MaxSteps)
	}
	switch c.Simulation.Sampler {
	case "lcg", "rand":
	default:
		return fmt.Errorf("invalid simulation sampler: %q", c.Simulation.Sampler)
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "optionsanalytics")
	v.SetDefault("version", "dev")
	v.SetDefault("environment", "dev")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 30)
	v.SetDefault("http.write_timeout", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("simulation.max_paths", 100)
	v.SetDefault("simulation.max_steps", 10000)
	v.SetDefault("simulation.sampler", "lcg")
}
