package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证完整配置文件能否被成功加载
func TestLoadConfigFromFile(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
  max_upload_mb: 32
storage:
  upload_dir: "/tmp/resume-uploads"
  output_dir: "/tmp/resume-outputs"
llm:
  enabled: true
  model: "sonar"
  api_key_env: "TEST_LLM_KEY"
generator:
  font_name: "NotoSansSC"
  font_path: "fonts/NotoSansSC-Regular.ttf"
logger:
  level: "debug"
  format: "json"
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, config, "配置对象不应为 nil")

	assert.Equal(t, ":9090", config.Server.Address, "Server.Address 的值与预期不符")
	assert.Equal(t, int64(32), config.Server.MaxUploadMB, "Server.MaxUploadMB 的值与预期不符")
	assert.Equal(t, "/tmp/resume-uploads", config.Storage.UploadDir)
	assert.Equal(t, "/tmp/resume-outputs", config.Storage.OutputDir)
	assert.True(t, config.LLM.Enabled, "LLM.Enabled 应为 true")
	assert.Equal(t, "sonar", config.LLM.Model)
	assert.Equal(t, "NotoSansSC", config.Generator.FontName)
	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "json", config.Logger.Format)

	// 未设置的字段应回填默认值
	assert.Equal(t, "https://api.perplexity.ai", config.LLM.BaseURL, "LLM.BaseURL 应使用默认值")
}

// TestLoadConfigMissingFile 验证配置文件不存在时返回默认配置
func TestLoadConfigMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-missing")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	config, err := LoadConfig(filepath.Join(tmpDir, "no-such-config.yaml"))
	require.NoError(t, err, "配置文件缺失时应返回默认配置而非错误")
	require.NotNil(t, config)

	assert.Equal(t, ":8080", config.Server.Address, "默认服务器地址与预期不符")
	assert.Equal(t, int64(16), config.Server.MaxUploadMB)
	assert.Equal(t, "uploads", config.Storage.UploadDir)
	assert.Equal(t, "outputs", config.Storage.OutputDir)
	assert.False(t, config.LLM.Enabled, "LLM分析默认应关闭")
	assert.Equal(t, "sonar-pro", config.LLM.Model)
	assert.Equal(t, "PERPLEXITY_API", config.LLM.APIKeyEnv)
	assert.Equal(t, "info", config.Logger.Level)
}

// TestLoadConfigInvalidYAML 验证YAML语法错误时返回解析错误
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-invalid")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte("server: [this is: not valid"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	assert.Error(t, err, "非法YAML应返回错误")
	assert.Nil(t, config)
}

// TestLoadConfigFromFileOnly 验证严格加载模式要求文件存在
func TestLoadConfigFromFileOnly(t *testing.T) {
	_, err := LoadConfigFromFileOnly("")
	assert.Error(t, err, "空路径应返回错误")

	_, err = LoadConfigFromFileOnly("/nonexistent/config.yaml")
	assert.Error(t, err, "不存在的文件应返回错误")
}

// TestAPIKeyFromEnv 验证API Key从配置指定的环境变量读取
func TestAPIKeyFromEnv(t *testing.T) {
	config := defaultConfig()
	config.LLM.APIKeyEnv = "RESUME_TEST_API_KEY"

	t.Setenv("RESUME_TEST_API_KEY", "pplx-test-key")
	assert.Equal(t, "pplx-test-key", config.APIKey())

	config.LLM.APIKeyEnv = ""
	assert.Empty(t, config.APIKey(), "未指定环境变量名时应返回空字符串")
}
