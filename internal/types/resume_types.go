package types

// PersonalInfo 简历中的个人基本信息，所有字段默认为空字符串
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// EducationEntry 一条教育经历
type EducationEntry struct {
	Institution string `json:"institution"` // 学校/机构
	Degree      string `json:"degree"`      // 学位
	Major       string `json:"major"`       // 专业
	Period      string `json:"period"`      // 时间段
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// WorkExperienceEntry 一条工作经历，Description为逐条的描述行
type WorkExperienceEntry struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Period      string   `json:"period"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

// ProjectEntry 一条项目经历
// Technologies 字段结构上保留，但基线启发式规则从不填充它
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Period       string   `json:"period"`
}

// CertificationEntry 一条证书记录
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// AwardEntry 一条获奖记录
type AwardEntry struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// ResumeRecord 一次解析调用产出的完整结构化简历
// 组装完成后不再变更，核心自身不负责持久化
type ResumeRecord struct {
	PersonalInfo   PersonalInfo          `json:"personal_info"`
	Education      []EducationEntry      `json:"education"`
	WorkExperience []WorkExperienceEntry `json:"work_experience"`
	Skills         []string              `json:"skills"`
	Projects       []ProjectEntry        `json:"projects"`
	Certifications []CertificationEntry  `json:"certifications"`
	Languages      []string              `json:"languages"`
	Awards         []AwardEntry          `json:"awards"`
	Summary        string                `json:"summary"`
}
