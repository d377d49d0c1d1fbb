// Package extractor 实现简历文本的启发式结构化抽取引擎
//
// 引擎面向行做关键词匹配，不做语义理解。每个抽取器独立扫描同一份
// 不可变文本并写入互不相交的输出字段，任何字段未命中时返回其
// 零值，这是预期结果而非错误。
package extractor

import (
	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

// Extract 对一份简历文本运行全部抽取器并组装为结构化记录
// 各抽取器之间没有共享可变状态，对任意输入都不会失败
func Extract(text string) *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo:   ExtractPersonalInfo(text),
		Education:      ExtractEducation(text),
		WorkExperience: ExtractWorkExperience(text),
		Skills:         ExtractSkills(text),
		Projects:       ExtractProjects(text),
		Certifications: ExtractCertifications(text),
		Languages:      ExtractLanguages(text),
		Awards:         ExtractAwards(text),
		Summary:        ExtractSummary(text),
	}
}
