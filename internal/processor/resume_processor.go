// Package processor 负责协调一次简历解析调用的完整流程：
// 文本获取 → 启发式抽取 → 模板渲染 → 可选的LLM差距分析
package processor

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/asminez/JOBSPER-AI-asmin/internal/extractor"
	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

// TextAcquirer 从本地文件获取扁平文本的集成接口
type TextAcquirer interface {
	Extract(ctx context.Context, filePath string) (string, error)
}

// TemplateRenderer 将结构化记录渲染为输出文档
type TemplateRenderer interface {
	Generate(record *types.ResumeRecord, originalFilename string) (string, error)
}

// GapAnalyzer 简历差距分析的集成接口，可为 nil 表示未启用
type GapAnalyzer interface {
	Analyze(ctx context.Context, resumeJSON, jobDescription string) (string, error)
}

// ProcessResult 一次解析调用的产物
// 引擎整体不允许部分失败：要么产出完整（可能稀疏）的记录，
// 要么在文本获取阶段快速失败；唯有分析调用的失败被隔离在 AnalysisErr 中
type ProcessResult struct {
	Record      *types.ResumeRecord
	OutputPath  string
	Analysis    string
	AnalysisErr error
}

// ResumeProcessor 简历处理流水线
type ResumeProcessor struct {
	acquirer TextAcquirer
	renderer TemplateRenderer
	analyzer GapAnalyzer
	logger   zerolog.Logger
}

// NewResumeProcessor 创建流水线，analyzer 可为 nil
func NewResumeProcessor(acquirer TextAcquirer, renderer TemplateRenderer, analyzer GapAnalyzer) *ResumeProcessor {
	return &ResumeProcessor{
		acquirer: acquirer,
		renderer: renderer,
		analyzer: analyzer,
		logger:   logger.Logger.With().Str("component", "resume_processor").Logger(),
	}
}

// Process 同步处理一份简历文件
// submissionUUID 仅用于日志与错误上下文
func (p *ResumeProcessor) Process(ctx context.Context, submissionUUID, filePath, jobDescription string) (*ProcessResult, error) {
	text, err := p.acquirer.Extract(ctx, filePath)
	if err != nil {
		return nil, NewExtractError(submissionUUID, err.Error())
	}

	record := extractor.Extract(text)
	p.logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("file", filepath.Base(filePath)).
		Int("education", len(record.Education)).
		Int("work_experience", len(record.WorkExperience)).
		Int("skills", len(record.Skills)).
		Msg("简历结构化抽取完成")

	outputPath, err := p.renderer.Generate(record, filepath.Base(filePath))
	if err != nil {
		return nil, NewRenderError(submissionUUID, err.Error())
	}

	result := &ProcessResult{
		Record:     record,
		OutputPath: outputPath,
	}

	// 分析调用失败只影响这一项操作，不影响已产出的记录与文档
	if p.analyzer != nil {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			result.AnalysisErr = NewAnalyzeError(submissionUUID, err.Error())
			return result, nil
		}
		analysis, err := p.analyzer.Analyze(ctx, string(recordJSON), jobDescription)
		if err != nil {
			p.logger.Warn().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("LLM差距分析失败，记录与模板文档不受影响")
			result.AnalysisErr = NewAnalyzeError(submissionUUID, err.Error())
			return result, nil
		}
		result.Analysis = analysis
	}

	return result, nil
}
