package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/asminez/JOBSPER-AI-asmin/internal/api/handler"
	"github.com/asminez/JOBSPER-AI-asmin/internal/logger"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// 可选的目标岗位描述
		jobDescription := ctx.PostForm("job_description")

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		// 处理上传
		resp, err := resumeHandler.HandleResumeUpload(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			jobDescription,
		)
		if err != nil {
			status := consts.StatusInternalServerError
			if errors.Is(err, handler.ErrFileTypeNotAllowed) || errors.Is(err, handler.ErrFileTooLarge) || errors.Is(err, handler.ErrNoFile) {
				status = consts.StatusBadRequest
			}
			logger.Error().
				Err(err).
				Str("filename", fileHeader.Filename).
				Msg("处理简历上传失败")
			ctx.JSON(status, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/download/:filename", func(c context.Context, ctx *app.RequestContext) {
		filename := ctx.Param("filename")

		fullPath, err := resumeHandler.ResolveDownload(filename)
		if err != nil {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "文件不存在"})
			return
		}

		ctx.Response.Header.Set("Content-Disposition", "attachment; filename="+filename)
		ctx.File(fullPath)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
