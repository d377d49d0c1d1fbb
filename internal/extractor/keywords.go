package extractor

// 各抽取器的中英双语章节关键词表
// 关键词表是数据而非代码分支：匹配逻辑对所有语言统一，扩展词表不需要改动控制流

// educationKeywords 教育章节关键词
var educationKeywords = []string{
	"education", "university", "college", "degree", "bachelor", "master", "phd", "diploma", "school",
	"教育", "学历", "教育背景", "教育经历", "大学", "学院", "学校", "毕业", "学位", "本科", "硕士", "博士", "学士",
}

// degreeKeywords 学位关键词，用于在教育块内识别学位行
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctor", "associate", "diploma",
	"本科", "学士", "硕士", "博士", "专科", "研究生", "博士研究生", "硕士研究生",
}

// workKeywords 工作经历章节关键词
var workKeywords = []string{
	"experience", "employment", "work", "position", "job", "career", "company",
	"工作", "工作经历", "工作经验", "工作履历", "职业经历", "任职", "就职", "公司", "职位", "岗位",
}

// skillKeywords 技能章节关键词
var skillKeywords = []string{
	"skill", "technical", "proficiency", "expertise", "competence",
	"技能", "专业技能", "技术技能", "能力", "专长", "技术", "掌握", "熟悉", "精通",
}

// commonSkills 常见技术词表，技能章节缺失时在全文中回退匹配
var commonSkills = []string{
	"python", "java", "javascript", "react", "vue", "angular",
	"node", "sql", "mongodb", "docker", "kubernetes", "aws",
	"git", "linux", "html", "css", "typescript", "spring",
	"django", "flask", "express", "mysql", "postgresql",
}

// projectKeywords 项目章节关键词
var projectKeywords = []string{
	"project", "portfolio", "development",
	"项目", "项目经验", "项目经历", "作品", "开发", "项目作品",
}

// certKeywords 证书关键词，逐行匹配
var certKeywords = []string{
	"certification", "certificate", "certified", "license",
	"证书", "认证", "资格证", "资质", "执照", "资格认证",
}

// languageKeywords 语言能力章节关键词
var languageKeywords = []string{
	"language", "languages", "english", "chinese", "spanish", "french", "german",
	"语言", "语言能力", "外语", "英语", "中文", "普通话", "粤语",
}

// awardKeywords 获奖关键词，逐行匹配
var awardKeywords = []string{
	"award", "honor", "achievement", "recognition", "prize",
	"奖项", "荣誉", "奖励", "获奖", "成就", "表彰", "嘉奖",
}

// summaryKeywords 个人简介章节关键词
var summaryKeywords = []string{
	"summary", "objective", "profile", "about", "introduction",
	"简介", "个人简介", "自我评价", "个人介绍", "概述", "个人概述", "职业目标",
}
