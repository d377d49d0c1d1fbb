package extractor

import (
	"regexp"
	"strings"

	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phoneRegexes 电话模式，按优先级排列，命中即停
	// 依次为：通用长数字串、北美格式、国内手机号、带分隔符手机号、带区号座机
	phoneRegexes = []*regexp.Regexp{
		regexp.MustCompile(`\+?[\d\s\-()]{10,}`),
		regexp.MustCompile(`1?\s*\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`1[3-9]\d{9}`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{4}[-.\s]?\d{4}`),
		regexp.MustCompile(`0\d{2,3}[-.\s]?\d{7,8}`),
	}

	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[\w\-]+`)
	// Go的regexp不支持负向先行断言，网址先全量匹配再过滤linkedin/github域名
	websiteRegex = regexp.MustCompile(`(?i)https?://[\w.\-]+\.[a-z]{2,}`)
)

// phoneScanLimit 电话号码只在原始文本的前500个字符内查找
const phoneScanLimit = 500

// ExtractPersonalInfo 从原始文本中提取个人信息
// 每个字段至多一个值，首个命中生效；未命中的字段保持空字符串
func ExtractPersonalInfo(text string) types.PersonalInfo {
	var info types.PersonalInfo

	if email := emailRegex.FindString(text); email != "" {
		info.Email = email
	}

	// 电话：限定在文本开头，按模式优先级取第一个命中
	head := text
	if runes := []rune(head); len(runes) > phoneScanLimit {
		head = string(runes[:phoneScanLimit])
	}
	for _, re := range phoneRegexes {
		if phone := re.FindString(head); phone != "" {
			info.Phone = strings.TrimSpace(phone)
			break
		}
	}

	if m := linkedinRegex.FindString(text); m != "" {
		info.LinkedIn = "https://" + m
	}
	if m := githubRegex.FindString(text); m != "" {
		info.GitHub = "https://" + m
	}

	for _, m := range websiteRegex.FindAllString(text, -1) {
		host := strings.ToLower(m)
		host = strings.TrimPrefix(host, "https://")
		host = strings.TrimPrefix(host, "http://")
		if strings.HasPrefix(host, "linkedin") || strings.HasPrefix(host, "github") {
			continue
		}
		info.Website = m
		break
	}

	// 姓名：简历通常以姓名开头，取首个非空行，要求不超过4个词且不含@
	if lines := SplitLines(text); len(lines) > 0 {
		candidate := lines[0]
		if len(strings.Fields(candidate)) <= 4 && !strings.Contains(candidate, "@") {
			info.Name = candidate
		}
	}

	return info
}
