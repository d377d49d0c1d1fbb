package extractor

import (
	"regexp"
	"strings"

	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

// 块式抽取器：命中章节关键词的行开启一条新记录并关闭上一条，
// 其余行通过次级模式更新当前打开的记录

const (
	maxEducationEntries = 5
	maxWorkEntries      = 10
	maxWorkDescLines    = 5
	maxProjectEntries   = 10
	maxCertEntries      = 10
	maxAwardEntries     = 10
	maxSkills           = 30
	maxLanguages        = 10
	maxSummaryLines     = 5
	skillScanStopCount  = 20 // 原始技能条目超过该数量后提前停止扫描
	minSkillItemLength  = 2
)

var yearRegex = regexp.MustCompile(`\d{4}`)

// atInSeparator 英文格式的职位/公司分隔词："Position at Company" 或 "Position in Company"
var atInSeparator = regexp.MustCompile(`(?i)\s+at\s+|\s+in\s+`)

// pipeSeparator 中文常见格式："职位｜公司" 或 "职位 | 公司"
var pipeSeparator = regexp.MustCompile(`\s*\|\s*|｜`)

// ExtractEducation 提取教育经历，按文档顺序最多保留5条
func ExtractEducation(text string) []types.EducationEntry {
	var education []types.EducationEntry
	var current *types.EducationEntry

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, educationKeywords) {
			if current != nil {
				education = append(education, *current)
			}
			current = &types.EducationEntry{Institution: line}
			continue
		}
		if current == nil {
			continue
		}
		// 学位行：每个块内首个命中生效
		if current.Degree == "" && containsAny(lineLower, degreeKeywords) {
			current.Degree = line
		}
		// 含四位数字的行视为时间段行，后出现者覆盖
		if yearRegex.MatchString(line) {
			current.Period = line
		}
	}
	if current != nil {
		education = append(education, *current)
	}

	if len(education) > maxEducationEntries {
		education = education[:maxEducationEntries]
	}
	return education
}

// ExtractWorkExperience 提取工作经历，按文档顺序最多保留10条
// 章节标题行本身会尝试拆分出职位与公司：
// 英文 "Position at/in Company"，中文 "职位｜公司"，否则整行作为公司
func ExtractWorkExperience(text string) []types.WorkExperienceEntry {
	var experience []types.WorkExperienceEntry
	var current *types.WorkExperienceEntry

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, workKeywords) {
			if current != nil {
				experience = append(experience, *current)
			}
			current = &types.WorkExperienceEntry{}
			parseWorkHeader(current, line)
			continue
		}
		if current == nil {
			continue
		}
		if yearRegex.MatchString(line) {
			current.Period = line
		} else if !strings.HasPrefix(line, "-") {
			if len(current.Description) < maxWorkDescLines {
				current.Description = append(current.Description, line)
			}
		}
	}
	if current != nil {
		experience = append(experience, *current)
	}

	if len(experience) > maxWorkEntries {
		experience = experience[:maxWorkEntries]
	}
	return experience
}

// parseWorkHeader 从章节标题行拆分职位与公司
// 固定假设左为职位、右为公司，源文本顺序颠倒时会误判；两个字段都保留输出，
// 便于以后引入分类器修正而无需改变结构
func parseWorkHeader(exp *types.WorkExperienceEntry, line string) {
	if loc := atInSeparator.FindStringIndex(line); loc != nil {
		exp.Position = strings.TrimSpace(line[:loc[0]])
		exp.Company = strings.TrimSpace(line[loc[1]:])
		return
	}
	if loc := pipeSeparator.FindStringIndex(line); loc != nil {
		exp.Position = strings.TrimSpace(line[:loc[0]])
		exp.Company = strings.TrimSpace(line[loc[1]:])
		return
	}
	exp.Company = line
}

// ExtractProjects 提取项目经历，按文档顺序最多保留10条
// 标题行后的首个普通行成为描述，其余普通行以空格续接；
// Technologies 不由该启发式填充，保持空序列
func ExtractProjects(text string) []types.ProjectEntry {
	var projects []types.ProjectEntry
	var current *types.ProjectEntry

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, projectKeywords) {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &types.ProjectEntry{Name: line, Technologies: []string{}}
			continue
		}
		if current == nil {
			continue
		}
		if yearRegex.MatchString(line) {
			current.Period = line
			continue
		}
		if current.Description == "" {
			current.Description = line
		} else {
			current.Description += " " + line
		}
	}
	if current != nil {
		projects = append(projects, *current)
	}

	if len(projects) > maxProjectEntries {
		projects = projects[:maxProjectEntries]
	}
	return projects
}
