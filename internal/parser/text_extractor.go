package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
)

// ErrUnsupportedFormat 文件扩展名不在支持范围内
var ErrUnsupportedFormat = errors.New("不支持的文件格式")

// FileExtractor 从本地文件提取单个扁平文本的接口
type FileExtractor interface {
	ExtractFromFile(ctx context.Context, filePath string) (string, error)
}

// TextExtractor 按扩展名分发的文本获取器
// .txt 直接读取；.pdf 先用首选策略，失败后退到备用策略；
// .doc/.docx 走Word段落提取；其余扩展名返回 ErrUnsupportedFormat
type TextExtractor struct {
	pdfPrimary  FileExtractor
	pdfFallback FileExtractor
	docx        FileExtractor
	logger      zerolog.Logger
}

// NewTextExtractor 创建文本获取器
// pdfPrimary 允许为 nil（例如初始化失败时），此时PDF直接使用备用策略
func NewTextExtractor(pdfPrimary, pdfFallback, docx FileExtractor) *TextExtractor {
	return &TextExtractor{
		pdfPrimary:  pdfPrimary,
		pdfFallback: pdfFallback,
		docx:        docx,
		logger:      logger.Logger.With().Str("component", "text_extractor").Logger(),
	}
}

// Extract 给定文件路径，返回一个扁平文本串
// 两种PDF策略都失败时该次解析调用即告失败
func (t *TextExtractor) Extract(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("读取文本文件失败: %w", err)
		}
		return string(data), nil

	case ".pdf":
		return t.extractPDF(ctx, filePath)

	case ".doc", ".docx":
		return t.docx.ExtractFromFile(ctx, filePath)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (t *TextExtractor) extractPDF(ctx context.Context, filePath string) (string, error) {
	if t.pdfPrimary != nil {
		text, err := t.pdfPrimary.ExtractFromFile(ctx, filePath)
		if err == nil {
			return text, nil
		}
		t.logger.Warn().
			Err(err).
			Str("file", filePath).
			Msg("首选PDF解析策略失败，回退到备用策略")
	}

	text, err := t.pdfFallback.ExtractFromFile(ctx, filePath)
	if err != nil {
		return "", fmt.Errorf("两种PDF解析策略均失败: %w", err)
	}
	return text, nil
}
