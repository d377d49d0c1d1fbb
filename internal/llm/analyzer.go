// Package llm 调用OpenAI兼容端点对简历做差距分析
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey 未配置API密钥
var ErrMissingAPIKey = errors.New("未配置LLM API密钥")

// DefaultBaseURL Perplexity的OpenAI兼容接口地址
const DefaultBaseURL = "https://api.perplexity.ai"

// DefaultModel 默认使用的模型
const DefaultModel = "sonar-pro"

const systemPrompt = "You are a professional ATS resume optimizer. Use Markdown for formatting. Bold all section headers."

// genericJD 未提供岗位描述时的替代指令
const genericJD = "No specific job description provided. Provide a general professional critique."

const promptTemplate = `Analyze the following resume against the job description.

RESUME:
%s

JOB DESCRIPTION:
%s

Structure your response using these exact headers in BOLD:
**KEYWORD GAP ANALYSIS**
(List missing keywords here)

**EXPERIENCE & SKILL GAPS**
(List missing experience or certifications)

**ACTIONABLE RECOMMENDATIONS**
(List 3-4 specific ways to improve this resume)

Keep it short, professional, and use bullet points.`

// ChatClient 发起对话补全所需的最小接口，便于测试替换
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Analyzer 简历差距分析器
type Analyzer struct {
	client ChatClient
	model  string
}

// Option 分析器配置选项
type Option func(*Analyzer)

// WithModel 覆盖默认模型
func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

// WithChatClient 注入自定义客户端（测试用）
func WithChatClient(client ChatClient) Option {
	return func(a *Analyzer) {
		a.client = client
	}
}

// NewAnalyzer 创建分析器
// apiKey为空且未注入自定义客户端时返回 ErrMissingAPIKey
func NewAnalyzer(apiKey, baseURL string, options ...Option) (*Analyzer, error) {
	a := &Analyzer{model: DefaultModel}
	for _, option := range options {
		option(a)
	}
	if a.client == nil {
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		} else {
			cfg.BaseURL = DefaultBaseURL
		}
		a.client = openai.NewClientWithConfig(cfg)
	}
	return a, nil
}

// Analyze 将JSON序列化的简历记录与岗位描述送入模型，返回三段式差距分析文本
// 任何失败（网络错误、非2xx响应）都作为错误返回给调用方，不得吞掉
func (a *Analyzer) Analyze(ctx context.Context, resumeJSON, jobDescription string) (string, error) {
	jd := jobDescription
	if strings.TrimSpace(jd) == "" {
		jd = genericJD
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, resumeJSON, jd)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("简历分析请求失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("简历分析返回空结果")
	}
	return resp.Choices[0].Message.Content, nil
}
