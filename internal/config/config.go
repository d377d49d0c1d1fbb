package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 文件存储配置
	Storage StorageConfig `yaml:"storage"`

	// LLM差距分析配置
	LLM LLMConfig `yaml:"llm"`

	// 模板简历生成配置
	Generator GeneratorConfig `yaml:"generator"`

	// 日志配置
	Logger logger.Config `yaml:"logger"`
}

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address     string `yaml:"address"`       // 例如 ":8080" or "0.0.0.0:8080"
	MaxUploadMB int64  `yaml:"max_upload_mb"` // 上传文件大小上限(MB)
}

// StorageConfig 定义上传与生成文件的本地目录
type StorageConfig struct {
	UploadDir string `yaml:"upload_dir"` // 上传简历的存放目录
	OutputDir string `yaml:"output_dir"` // 生成简历的输出目录
}

// LLMConfig 定义简历差距分析所用LLM的配置
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled"`     // 是否启用LLM分析
	BaseURL   string `yaml:"base_url"`    // API地址，默认Perplexity
	Model     string `yaml:"model"`       // 模型名称
	APIKeyEnv string `yaml:"api_key_env"` // 存放API Key的环境变量名
}

// GeneratorConfig 定义PDF生成器的字体配置
type GeneratorConfig struct {
	FontName string `yaml:"font_name"` // UTF-8字体名称，留空使用内置Helvetica
	FontPath string `yaml:"font_path"` // TTF字体文件路径
}

// LoadConfig 从文件加载配置，文件不存在时返回默认配置
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 无配置文件时以默认配置启动
			return config, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(config)
	return config, nil
}

// LoadConfigFromFileOnly 从指定文件加载配置，文件必须存在
func LoadConfigFromFileOnly(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("必须提供配置文件路径")
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(config)
	return config, nil
}

// APIKey 读取LLM配置指定的环境变量中的API Key
func (c *Config) APIKey() string {
	if c.LLM.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.LLM.APIKeyEnv)
}

// 创建一个默认配置
func defaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// 填充未设置字段的默认值
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080" // 默认服务器地址
	}
	if config.Server.MaxUploadMB <= 0 {
		config.Server.MaxUploadMB = 16
	}
	if config.Storage.UploadDir == "" {
		config.Storage.UploadDir = "uploads"
	}
	if config.Storage.OutputDir == "" {
		config.Storage.OutputDir = "outputs"
	}
	if config.LLM.BaseURL == "" {
		config.LLM.BaseURL = "https://api.perplexity.ai"
	}
	if config.LLM.Model == "" {
		config.LLM.Model = "sonar-pro"
	}
	if config.LLM.APIKeyEnv == "" {
		config.LLM.APIKeyEnv = "PERPLEXITY_API"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "pretty"
	}
	if config.Logger.TimeFormat == "" {
		config.Logger.TimeFormat = "2006-01-02 15:04:05"
	}
}
