package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
)

// pdfParseTimeout 单个PDF解析的超时时间
const pdfParseTimeout = 30 * time.Second

// EinoPDFExtractor 使用 Eino PDF Parser 提取文本，作为PDF的首选解析策略
// 配置为按页分割，页文本以换行符拼接
type EinoPDFExtractor struct {
	parser *pdf.PDFParser
	logger zerolog.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(l zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFExtractor) {
		e.logger = l
	}
}

// NewEinoPDFExtractor 初始化 Eino PDF 文本提取器
func NewEinoPDFExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true, // 按页提取，页与页之间以换行拼接
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Eino PDF parser: %w", err)
	}

	extractor := &EinoPDFExtractor{
		parser: p,
		logger: logger.Logger.With().Str("component", "eino_pdf").Logger(),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractFromFile 从PDF文件路径提取完整的纯文本内容
func (e *EinoPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF file %s: %w", filePath, err)
	}
	defer file.Close()

	return e.ExtractFromReader(ctx, file, filePath)
}

// ExtractFromReader 从 io.Reader 提取文本，各页内容以换行符连接
func (e *EinoPDFExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, pdfParseTimeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader, einoParser.WithURI(uri))
	if err != nil {
		return "", fmt.Errorf("eino PDF parser failed for %s: %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("eino PDF parser returned no documents for %s", uri)
	}

	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, doc.Content)
	}
	text := strings.Join(pages, "\n")

	e.logger.Debug().
		Str("uri", uri).
		Int("pages", len(docs)).
		Int("chars", len(text)).
		Dur("elapsed", time.Since(startTime)).
		Msg("PDF文本提取完成")
	return text, nil
}
