package extractor

import "strings"

// SplitLines 将原始文本规范化为有序、非空、已去除首尾空白的行序列
// 统一Windows/Unix换行符，空行与纯空白行被丢弃；空输入得到空序列
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// containsAny 判断行（小写后）是否包含词表中的任一关键词
func containsAny(lineLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lineLower, kw) {
			return true
		}
	}
	return false
}
