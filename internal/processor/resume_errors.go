package processor

import (
	"errors"
	"fmt"
)

// 基础错误类型，对应解析调用的失败分类
var (
	ErrExtractTextFailed = errors.New("提取简历文本失败")
	ErrRenderFailed      = errors.New("生成模板文档失败")
	ErrAnalyzeFailed     = errors.New("简历差距分析失败")
)

// ResumeProcessError 包含详细上下文的处理错误
type ResumeProcessError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *ResumeProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *ResumeProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 以支持按基础错误比较
func (e *ResumeProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

func NewExtractError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "extract_text",
		BaseErr:        ErrExtractTextFailed,
		Detail:         detail,
	}
}

func NewRenderError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "render",
		BaseErr:        ErrRenderFailed,
		Detail:         detail,
	}
}

func NewAnalyzeError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "analyze",
		BaseErr:        ErrAnalyzeFailed,
		Detail:         detail,
	}
}
