package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxExtractor 提取Word文档（.doc/.docx）的段落文本，段落间以换行符连接
type DocxExtractor struct{}

// NewDocxExtractor 创建Word文档文本提取器
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// paragraphTag docx正文XML中的段落边界
var paragraphTag = regexp.MustCompile(`</w:p>`)

// xmlTag 清理段落内容中残留的XML标签
var xmlTag = regexp.MustCompile(`<[^>]+>`)

// ExtractFromFile 从Word文档提取所有段落文本
func (e *DocxExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx %s: %w", filePath, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// GetContent 返回正文XML，按段落切开后剥离标签得到纯文本行
	var paragraphs []string
	for _, chunk := range paragraphTag.Split(content, -1) {
		text := strings.TrimSpace(xmlTag.ReplaceAllString(chunk, ""))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
