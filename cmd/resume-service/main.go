package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/asminez/JOBSPER-AI-asmin/internal/api/handler"
	"github.com/asminez/JOBSPER-AI-asmin/internal/api/router"
	"github.com/asminez/JOBSPER-AI-asmin/internal/config"
	"github.com/asminez/JOBSPER-AI-asmin/internal/generator"
	"github.com/asminez/JOBSPER-AI-asmin/internal/llm"
	appCoreLogger "github.com/asminez/JOBSPER-AI-asmin/internal/logger"
	"github.com/asminez/JOBSPER-AI-asmin/internal/parser"
	"github.com/asminez/JOBSPER-AI-asmin/internal/processor"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "配置文件路径")
	pflag.Parse()

	// .env 可选，缺失时静默忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		appCoreLogger.Fatal().Err(err).Msg("加载配置失败")
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 文本获取器：Eino PDF为首选，初始化失败时仅保留备用策略
	var pdfPrimary parser.FileExtractor
	einoExtractor, err := parser.NewEinoPDFExtractor(ctx)
	if err != nil {
		glog.Warnf("初始化Eino PDF提取器失败，PDF解析将仅使用备用策略: %v", err)
	} else {
		pdfPrimary = einoExtractor
		glog.Info("Eino PDF提取器初始化成功")
	}
	textExtractor := parser.NewTextExtractor(pdfPrimary, parser.NewFallbackPDFExtractor(), parser.NewDocxExtractor())

	// 模板简历生成器
	var genOptions []generator.Option
	if cfg.Generator.FontName != "" && cfg.Generator.FontPath != "" {
		genOptions = append(genOptions, generator.WithUTF8Font(cfg.Generator.FontName, cfg.Generator.FontPath))
	}
	resumeGenerator, err := generator.NewResumeGenerator(cfg.Storage.OutputDir, genOptions...)
	if err != nil {
		glog.Fatalf("初始化简历生成器失败: %v", err)
	}
	glog.Info("简历生成器初始化成功")

	// LLM差距分析器（可选组件）
	var analyzer processor.GapAnalyzer
	if cfg.LLM.Enabled {
		llmAnalyzer, err := llm.NewAnalyzer(cfg.APIKey(), cfg.LLM.BaseURL, llm.WithModel(cfg.LLM.Model))
		if err != nil {
			glog.Warnf("初始化LLM分析器失败，差距分析功能关闭: %v", err)
		} else {
			analyzer = llmAnalyzer
			glog.Infof("LLM分析器初始化成功，模型: %s", cfg.LLM.Model)
		}
	} else {
		glog.Info("LLM分析未启用")
	}

	resumeProcessor := processor.NewResumeProcessor(textExtractor, resumeGenerator, analyzer)
	resumeHandler := handler.NewResumeHandler(cfg, resumeProcessor)
	glog.Info("ResumeHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Server.MaxUploadMB)*1024*1024+1024*1024),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并接管Hertz的日志输出
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(cfg.Logger)

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	if cfg.Logger.Level == "debug" {
		glog.SetLevel(glog.LevelDebug)
	} else {
		glog.SetLevel(glog.LevelInfo)
	}
}
