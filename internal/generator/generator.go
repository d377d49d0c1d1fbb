// Package generator 将结构化简历记录渲染为标准化模板文档
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/asminez/JOBSPER-AI-asmin/internal/types"
)

// ResumeGenerator 简历模板生成器，输出A4版式的PDF文档
type ResumeGenerator struct {
	outputDir string
	fontPath  string // 可选的UTF-8字体文件，提供后支持中文输出
	fontName  string
}

// Option 生成器配置选项
type Option func(*ResumeGenerator)

// WithUTF8Font 配置UTF-8字体（如微软雅黑的ttf文件），用于渲染中文内容
func WithUTF8Font(name, path string) Option {
	return func(g *ResumeGenerator) {
		g.fontName = name
		g.fontPath = path
	}
}

// NewResumeGenerator 创建生成器并确保输出目录存在
func NewResumeGenerator(outputDir string, options ...Option) (*ResumeGenerator, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	g := &ResumeGenerator{
		outputDir: outputDir,
		fontName:  "Helvetica",
	}
	for _, option := range options {
		option(g)
	}
	return g, nil
}

// Generate 将简历记录渲染为模板文档并返回输出文件路径
// 无数据的章节整体省略；文件名携带生成时间戳避免冲突
func (g *ResumeGenerator) Generate(record *types.ResumeRecord, originalFilename string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if g.fontPath != "" {
		pdf.AddUTF8Font(g.fontName, "", g.fontPath)
		pdf.AddUTF8Font(g.fontName, "B", g.fontPath)
		pdf.AddUTF8Font(g.fontName, "I", g.fontPath)
	}
	pdf.SetFont(g.fontName, "", 11)
	pdf.AddPage()

	g.writePersonalInfo(pdf, record.PersonalInfo)

	if record.Summary != "" {
		g.writeSectionTitle(pdf, "Professional Summary")
		g.writeParagraph(pdf, record.Summary)
	}

	if len(record.WorkExperience) > 0 {
		g.writeSectionTitle(pdf, "Work Experience")
		for _, exp := range record.WorkExperience {
			g.writeWorkExperience(pdf, exp)
		}
	}

	if len(record.Education) > 0 {
		g.writeSectionTitle(pdf, "Education")
		for _, edu := range record.Education {
			g.writeEducation(pdf, edu)
		}
	}

	if len(record.Skills) > 0 {
		g.writeSectionTitle(pdf, "Skills")
		g.writeParagraph(pdf, strings.Join(record.Skills, ", "))
	}

	if len(record.Projects) > 0 {
		g.writeSectionTitle(pdf, "Projects")
		for _, project := range record.Projects {
			g.writeProject(pdf, project)
		}
	}

	if len(record.Certifications) > 0 {
		g.writeSectionTitle(pdf, "Certifications")
		for _, cert := range record.Certifications {
			g.writeCertification(pdf, cert)
		}
	}

	if len(record.Languages) > 0 {
		g.writeSectionTitle(pdf, "Languages")
		g.writeParagraph(pdf, strings.Join(record.Languages, ", "))
	}

	if len(record.Awards) > 0 {
		g.writeSectionTitle(pdf, "Awards & Honors")
		for _, award := range record.Awards {
			g.writeAward(pdf, award)
		}
	}

	outputName := fmt.Sprintf("resume_template_%s.pdf", time.Now().Format("20060102_150405"))
	outputPath := filepath.Join(g.outputDir, outputName)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("写入模板文档失败: %w", err)
	}
	return outputPath, nil
}

// writePersonalInfo 居中写入姓名与竖线连接的联系方式行
func (g *ResumeGenerator) writePersonalInfo(pdf *gofpdf.Fpdf, info types.PersonalInfo) {
	if info.Name != "" {
		pdf.SetFont(g.fontName, "B", 18)
		pdf.CellFormat(0, 10, info.Name, "", 1, "C", false, 0, "")
	}

	var contact []string
	for _, field := range []string{info.Email, info.Phone, info.Address, info.LinkedIn, info.GitHub, info.Website} {
		if field != "" {
			contact = append(contact, field)
		}
	}
	if len(contact) > 0 {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, strings.Join(contact, " | "), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func (g *ResumeGenerator) writeSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 7, strings.ToUpper(title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ResumeGenerator) writeParagraph(pdf *gofpdf.Fpdf, text string) {
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.Ln(2)
}

func (g *ResumeGenerator) writeWorkExperience(pdf *gofpdf.Fpdf, exp types.WorkExperienceEntry) {
	var header []string
	if exp.Position != "" {
		header = append(header, exp.Position)
	}
	if exp.Company != "" {
		header = append(header, "at "+exp.Company)
	}
	if len(header) > 0 {
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, strings.Join(header, " | "), "", 1, "L", false, 0, "")
	}

	var sub []string
	if exp.Period != "" {
		sub = append(sub, exp.Period)
	}
	if exp.Location != "" {
		sub = append(sub, exp.Location)
	}
	if len(sub) > 0 {
		pdf.SetFont(g.fontName, "I", 10)
		pdf.CellFormat(0, 5, strings.Join(sub, " | "), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(g.fontName, "", 11)
	for _, desc := range exp.Description {
		if desc != "" {
			pdf.MultiCell(0, 5, "- "+desc, "", "L", false)
		}
	}
	pdf.Ln(3)
}

func (g *ResumeGenerator) writeEducation(pdf *gofpdf.Fpdf, edu types.EducationEntry) {
	var header []string
	if edu.Degree != "" {
		header = append(header, edu.Degree)
	}
	if edu.Major != "" {
		header = append(header, "in "+edu.Major)
	}
	if len(header) > 0 {
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, strings.Join(header, " | "), "", 1, "L", false, 0, "")
	}

	if edu.Institution != "" {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 5, edu.Institution, "", 1, "L", false, 0, "")
	}

	var details []string
	if edu.Period != "" {
		details = append(details, edu.Period)
	}
	if edu.GPA != "" {
		details = append(details, "GPA: "+edu.GPA)
	}
	if len(details) > 0 {
		pdf.SetFont(g.fontName, "I", 10)
		pdf.CellFormat(0, 5, strings.Join(details, " | "), "", 1, "L", false, 0, "")
	}
	pdf.SetFont(g.fontName, "", 11)
	pdf.Ln(3)
}

func (g *ResumeGenerator) writeProject(pdf *gofpdf.Fpdf, project types.ProjectEntry) {
	if project.Name != "" {
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, project.Name, "", 1, "L", false, 0, "")
	}
	pdf.SetFont(g.fontName, "", 11)
	if project.Description != "" {
		pdf.MultiCell(0, 5, project.Description, "", "L", false)
	}
	if len(project.Technologies) > 0 {
		pdf.SetFont(g.fontName, "I", 10)
		pdf.CellFormat(0, 5, "Technologies: "+strings.Join(project.Technologies, ", "), "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 11)
	}
	pdf.Ln(3)
}

func (g *ResumeGenerator) writeCertification(pdf *gofpdf.Fpdf, cert types.CertificationEntry) {
	var parts []string
	if cert.Name != "" {
		parts = append(parts, cert.Name)
	}
	if cert.Issuer != "" {
		parts = append(parts, "("+cert.Issuer+")")
	}
	if cert.Date != "" {
		parts = append(parts, "- "+cert.Date)
	}
	if len(parts) > 0 {
		pdf.CellFormat(0, 5, strings.Join(parts, " "), "", 1, "L", false, 0, "")
	}
}

func (g *ResumeGenerator) writeAward(pdf *gofpdf.Fpdf, award types.AwardEntry) {
	var parts []string
	if award.Name != "" {
		parts = append(parts, award.Name)
	}
	if award.Date != "" {
		parts = append(parts, "("+award.Date+")")
	}
	if len(parts) > 0 {
		pdf.CellFormat(0, 5, strings.Join(parts, " - "), "", 1, "L", false, 0, "")
	}
}
