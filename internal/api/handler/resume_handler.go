package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/asminez/JOBSPER-AI-asmin/internal/config"
	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
	"github.com/asminez/JOBSPER-AI-asmin/internal/processor"
	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

var (
	// ErrNoFile 请求中未携带文件
	ErrNoFile = errors.New("请求中未找到上传文件")
	// ErrFileTypeNotAllowed 不支持的文件类型
	ErrFileTypeNotAllowed = errors.New("不支持的文件类型")
	// ErrFileTooLarge 文件超过大小限制
	ErrFileTooLarge = errors.New("文件超过大小限制")
	// ErrFileNotFound 请求的生成文件不存在
	ErrFileNotFound = errors.New("文件不存在")
)

// 允许上传的简历文件扩展名
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// 文件名清洗：仅保留字母数字、点、横线和下划线
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._\-]+`)

// ResumeHandler 简历处理器，负责协调上传简历的完整处理流程
type ResumeHandler struct {
	cfg             *config.Config
	processorModule *processor.ResumeProcessor
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(cfg *config.Config, processorModule *processor.ResumeProcessor) *ResumeHandler {
	return &ResumeHandler{
		cfg:             cfg,
		processorModule: processorModule,
	}
}

// ResumeUploadResponse 简历上传响应
type ResumeUploadResponse struct {
	Success     bool                `json:"success"`
	ResumeData  *types.ResumeRecord `json:"resume_data"`
	OutputFile  string              `json:"output_file"`
	LLMAnalysis string              `json:"llm_analysis,omitempty"`
	LLMError    string              `json:"llm_error,omitempty"`
}

// HandleResumeUpload 处理简历上传请求：落盘、结构化解析、生成模板简历、可选LLM分析
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, reader io.Reader, fileSize int64,
	filename string, jobDescription string) (*ResumeUploadResponse, error) {

	// 1. 校验文件类型与大小
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, ext)
	}
	maxBytes := h.cfg.Server.MaxUploadMB * 1024 * 1024
	if fileSize > maxBytes {
		return nil, fmt.Errorf("%w: %d字节", ErrFileTooLarge, fileSize)
	}

	// 2. 生成UUIDv7作为提交标识
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 3. 以UUID前缀的安全文件名落盘
	if err := os.MkdirAll(h.cfg.Storage.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	savedName := submissionUUID + "_" + sanitizeFilename(filename)
	savedPath := filepath.Join(h.cfg.Storage.UploadDir, savedName)

	out, err := os.Create(savedPath)
	if err != nil {
		return nil, fmt.Errorf("保存上传文件失败: %w", err)
	}
	written, err := io.Copy(out, io.LimitReader(reader, maxBytes+1))
	closeErr := out.Close()
	if err != nil {
		return nil, fmt.Errorf("写入上传文件失败: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("写入上传文件失败: %w", closeErr)
	}
	if written > maxBytes {
		os.Remove(savedPath)
		return nil, fmt.Errorf("%w: %d字节", ErrFileTooLarge, written)
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("filename", filename).
		Str("saved_path", savedPath).
		Msg("简历文件已保存")

	// 4. 执行处理流程
	result, err := h.processorModule.Process(ctx, submissionUUID, savedPath, jobDescription)
	if err != nil {
		return nil, err
	}

	resp := &ResumeUploadResponse{
		Success:    true,
		ResumeData: result.Record,
		OutputFile: filepath.Base(result.OutputPath),
	}
	if result.Analysis != "" {
		resp.LLMAnalysis = result.Analysis
	}
	if result.AnalysisErr != nil {
		// LLM分析失败不影响已产出的简历数据
		resp.LLMError = result.AnalysisErr.Error()
	}
	return resp, nil
}

// ResolveDownload 将下载文件名解析为输出目录下的安全路径
func (h *ResumeHandler) ResolveDownload(filename string) (string, error) {
	// 拒绝路径穿越
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}

	fullPath := filepath.Join(h.cfg.Storage.OutputDir, filename)
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	return fullPath, nil
}

// sanitizeFilename 清洗用户提供的文件名，防止注入路径片段
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	safe = strings.TrimLeft(safe, "._")
	if safe == "" {
		safe = "resume"
	}
	return safe
}
