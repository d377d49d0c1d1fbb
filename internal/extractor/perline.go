package extractor

import (
	"strings"

	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

// 逐行抽取器：没有章节状态，每个命中关键词的行独立成为一条记录

// ExtractCertifications 提取证书，最多保留10条
// 行内的首个四位数字作为日期
func ExtractCertifications(text string) []types.CertificationEntry {
	var certifications []types.CertificationEntry

	for _, line := range SplitLines(text) {
		if !containsAny(strings.ToLower(line), certKeywords) {
			continue
		}
		cert := types.CertificationEntry{Name: line}
		if year := yearRegex.FindString(line); year != "" {
			cert.Date = year
		}
		certifications = append(certifications, cert)
	}

	if len(certifications) > maxCertEntries {
		certifications = certifications[:maxCertEntries]
	}
	return certifications
}

// ExtractAwards 提取获奖记录，最多保留10条
func ExtractAwards(text string) []types.AwardEntry {
	var awards []types.AwardEntry

	for _, line := range SplitLines(text) {
		if !containsAny(strings.ToLower(line), awardKeywords) {
			continue
		}
		award := types.AwardEntry{Name: line}
		if year := yearRegex.FindString(line); year != "" {
			award.Date = year
		}
		awards = append(awards, award)
	}

	if len(awards) > maxAwardEntries {
		awards = awards[:maxAwardEntries]
	}
	return awards
}
