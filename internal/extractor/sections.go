package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// 累积式抽取器：首个命中关键词的行作为章节标记被消费，
// 其后的行按固定分隔符拆分为条目并累积

// itemSeparator 技能/语言条目的分隔符集合：逗号、分号、竖线、项目符、连字符
var itemSeparator = regexp.MustCompile(`[,;|•\-\n]`)

// ExtractSkills 提取技能列表，去重后最多保留30项
// 未找到技能章节时回退为在全文中匹配常见技术词，首字母大写后输出
func ExtractSkills(text string) []string {
	var skills []string
	inSection := false

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, skillKeywords) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		for _, item := range itemSeparator.Split(line, -1) {
			item = strings.TrimSpace(item)
			if utf8.RuneCountInString(item) >= minSkillItemLength {
				skills = append(skills, item)
			}
		}
		// 限制扫描成本：累积足够多的原始条目后提前结束
		if len(skills) > skillScanStopCount {
			break
		}
	}

	if len(skills) == 0 {
		textLower := strings.ToLower(text)
		for _, skill := range commonSkills {
			if strings.Contains(textLower, skill) {
				skills = append(skills, capitalize(skill))
			}
		}
	}

	skills = dedupe(skills)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// ExtractLanguages 提取语言能力，保序且允许重复，最多10项
func ExtractLanguages(text string) []string {
	var languages []string
	inSection := false

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, languageKeywords) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		for _, item := range itemSeparator.Split(line, -1) {
			item = strings.TrimSpace(item)
			if item != "" {
				languages = append(languages, item)
			}
		}
	}

	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}
	return languages
}

// ExtractSummary 提取个人简介：章节标记后最多5个整行，以空格连接
func ExtractSummary(text string) string {
	var summaryLines []string
	inSection := false

	for _, line := range SplitLines(text) {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, summaryKeywords) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		summaryLines = append(summaryLines, line)
		if len(summaryLines) >= maxSummaryLines {
			break
		}
	}

	return strings.Join(summaryLines, " ")
}

// dedupe 去重，保留首次出现的顺序以保证结果可复现
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
