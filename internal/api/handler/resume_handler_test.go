package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asminez/JOBSPER-AI-asmin/internal/api/handler"
	"github.com/asminez/JOBSPER-AI-asmin/internal/api/router"
	"github.com/asminez/JOBSPER-AI-asmin/internal/config"
	"github.com/asminez/JOBSPER-AI-asmin/internal/generator"
	"github.com/asminez/JOBSPER-AI-asmin/internal/parser"
	"github.com/asminez/JOBSPER-AI-asmin/internal/processor"
)

const sampleResumeText = `张三
电话：13812345678
邮箱：zhangsan@example.com

工作经历
高级工程师 at 云启科技
2019 - 2023
负责核心交易系统的设计与维护

专业技能
Go, Python, MySQL
`

// newTestServer 构建一个使用临时目录和真实处理流程的测试服务
func newTestServer(t *testing.T) (*server.Hertz, *handler.ResumeHandler, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.MaxUploadMB = 16
	cfg.Storage.UploadDir = filepath.Join(t.TempDir(), "uploads")
	cfg.Storage.OutputDir = filepath.Join(t.TempDir(), "outputs")

	gen, err := generator.NewResumeGenerator(cfg.Storage.OutputDir)
	require.NoError(t, err, "创建生成器失败")

	extractor := parser.NewTextExtractor(nil, parser.NewFallbackPDFExtractor(), parser.NewDocxExtractor())
	proc := processor.NewResumeProcessor(extractor, gen, nil)
	resumeHandler := handler.NewResumeHandler(cfg, proc)

	h := server.Default()
	router.RegisterRoutes(h, resumeHandler)
	return h, resumeHandler, cfg
}

// buildMultipartBody 构造带文件和岗位描述的multipart请求体
func buildMultipartBody(t *testing.T, filename string, content []byte, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// TestUploadTxtResume 验证上传文本简历走通完整流程并可下载生成文件
func TestUploadTxtResume(t *testing.T) {
	h, _, cfg := newTestServer(t)

	body, contentType := buildMultipartBody(t, "resume.txt", []byte(sampleResumeText), "")
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/upload",
		&ut.Body{Body: bytes.NewReader(body.Bytes()), Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType})
	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode(), "上传应返回200: %s", string(resp.Body()))

	var uploadResp handler.ResumeUploadResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &uploadResp))
	assert.True(t, uploadResp.Success, "上传响应success应为true")
	require.NotNil(t, uploadResp.ResumeData)
	assert.Equal(t, "zhangsan@example.com", uploadResp.ResumeData.PersonalInfo.Email)
	assert.Equal(t, "张三", uploadResp.ResumeData.PersonalInfo.Name)
	assert.NotEmpty(t, uploadResp.OutputFile, "应返回生成文件名")
	assert.Empty(t, uploadResp.LLMError, "未启用LLM时不应出现llm_error")

	// 生成文件应落在输出目录且可下载
	_, err := os.Stat(filepath.Join(cfg.Storage.OutputDir, uploadResp.OutputFile))
	require.NoError(t, err, "输出目录中应存在生成文件")

	dw := ut.PerformRequest(h.Engine, "GET", "/api/v1/download/"+uploadResp.OutputFile, nil)
	dResp := dw.Result()
	assert.Equal(t, 200, dResp.StatusCode(), "下载生成文件应返回200")
	assert.NotEmpty(t, dResp.Body(), "下载内容不应为空")
}

// TestUploadRejectsUnknownExtension 验证不支持的扩展名返回400
func TestUploadRejectsUnknownExtension(t *testing.T) {
	h, _, _ := newTestServer(t)

	body, contentType := buildMultipartBody(t, "malware.exe", []byte("MZ"), "")
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/upload",
		&ut.Body{Body: bytes.NewReader(body.Bytes()), Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType})
	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode(), "不支持的文件类型应返回400")

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(resp.Body(), &errResp))
	assert.Contains(t, errResp, "error")
}

// TestUploadWithoutFile 验证缺少文件字段返回400
func TestUploadWithoutFile(t *testing.T) {
	h, _, _ := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("job_description", "后端工程师"))
	require.NoError(t, writer.Close())

	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/upload",
		&ut.Body{Body: bytes.NewReader(body.Bytes()), Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: writer.FormDataContentType()})
	assert.Equal(t, 400, w.Result().StatusCode(), "缺少文件应返回400")
}

// TestDownloadMissingFile 验证下载不存在的文件返回404
func TestDownloadMissingFile(t *testing.T) {
	h, _, _ := newTestServer(t)

	w := ut.PerformRequest(h.Engine, "GET", "/api/v1/download/no-such-file.pdf", nil)
	assert.Equal(t, 404, w.Result().StatusCode(), "不存在的文件应返回404")
}

// TestResolveDownloadRejectsTraversal 验证下载路径解析拒绝路径穿越
func TestResolveDownloadRejectsTraversal(t *testing.T) {
	_, resumeHandler, cfg := newTestServer(t)

	// 在输出目录外放一个文件，确认无法通过相对路径访问
	outside := filepath.Join(filepath.Dir(cfg.Storage.OutputDir), "secret.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(outside), 0755))
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	for _, name := range []string{
		"../secret.txt",
		"..",
		"a/../secret.txt",
		"",
	} {
		_, err := resumeHandler.ResolveDownload(name)
		assert.ErrorIs(t, err, handler.ErrFileNotFound, "路径 %q 应被拒绝", name)
	}
}

// TestHealthEndpoint 验证健康检查
func TestHealthEndpoint(t *testing.T) {
	h, _, _ := newTestServer(t)

	w := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	resp := w.Result()
	assert.Equal(t, 200, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "ok")
}
