package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FallbackPDFExtractor 基于 ledongthuc/pdf 的备用PDF解析策略
// 首选策略因任何原因失败时使用，拼接契约与首选策略一致：逐页提取、换行连接
type FallbackPDFExtractor struct{}

// NewFallbackPDFExtractor 创建备用PDF解析器
func NewFallbackPDFExtractor() *FallbackPDFExtractor {
	return &FallbackPDFExtractor{}
}

// ExtractFromFile 从PDF文件逐页提取纯文本
func (e *FallbackPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf %s: %w", filePath, err)
	}
	defer f.Close()

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// 单页失败不中断整体提取
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
