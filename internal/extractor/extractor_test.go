package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResume 一份中英混排的完整简历样例
var sampleResume = strings.Join([]string{
	"张三",
	"电话: 13812345678",
	"邮箱: zhangsan@example.com",
	"LinkedIn: linkedin.com/in/zhangsan",
	"工作经历",
	"2019 - 2023",
	"负责核心交易系统的设计与维护",
	"获奖：优秀员工 2021",
	"教育背景",
	"2015 - 2019",
	"专业技能",
	"Go, Python, MySQL",
	"个人简介",
	"资深后端工程师，专注高并发服务",
}, "\n")

// TestExtract 验证组装器产出的完整记录
func TestExtract(t *testing.T) {
	record := Extract(sampleResume)
	require.NotNil(t, record)

	assert.Equal(t, "张三", record.PersonalInfo.Name)
	assert.Equal(t, "zhangsan@example.com", record.PersonalInfo.Email)
	assert.Equal(t, "13812345678", record.PersonalInfo.Phone)
	assert.Equal(t, "https://linkedin.com/in/zhangsan", record.PersonalInfo.LinkedIn)

	require.NotEmpty(t, record.Education)
	assert.Equal(t, "教育背景", record.Education[0].Institution)
	assert.Equal(t, "2015 - 2019", record.Education[0].Period)

	require.NotEmpty(t, record.WorkExperience)
	assert.Equal(t, "工作经历", record.WorkExperience[0].Company)
	assert.Contains(t, record.WorkExperience[0].Description, "负责核心交易系统的设计与维护")
	assert.Contains(t, record.Skills, "Go")
	assert.Contains(t, record.Skills, "Python")
	require.NotEmpty(t, record.Awards)
	assert.Equal(t, "2021", record.Awards[0].Date)
	assert.Equal(t, "资深后端工程师，专注高并发服务", record.Summary)
}

// TestExtractIdempotent 同一文本解析两次必须得到完全一致的记录
func TestExtractIdempotent(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)
	assert.Equal(t, first, second, "解析必须是确定性的")
}

// TestExtractEmptyInput 空输入产出形状正确的空记录，不报错
func TestExtractEmptyInput(t *testing.T) {
	record := Extract("")
	require.NotNil(t, record)
	assert.Equal(t, "", record.PersonalInfo.Name)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.WorkExperience)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Projects)
	assert.Empty(t, record.Certifications)
	assert.Empty(t, record.Languages)
	assert.Empty(t, record.Awards)
	assert.Equal(t, "", record.Summary)
}

// TestExtractCapInvariants 所有上限约束在夸张输入下仍然成立
func TestExtractCapInvariants(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines,
			"学校大学", "公司职位", "项目开发", "证书认证", "奖项荣誉")
	}
	record := Extract(strings.Join(lines, "\n"))

	assert.LessOrEqual(t, len(record.Education), 5)
	assert.LessOrEqual(t, len(record.WorkExperience), 10)
	for _, exp := range record.WorkExperience {
		assert.LessOrEqual(t, len(exp.Description), 5)
	}
	assert.LessOrEqual(t, len(record.Skills), 30)
	assert.LessOrEqual(t, len(record.Projects), 10)
	assert.LessOrEqual(t, len(record.Certifications), 10)
	assert.LessOrEqual(t, len(record.Languages), 10)
	assert.LessOrEqual(t, len(record.Awards), 10)
}
