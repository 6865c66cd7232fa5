package router

import (
	"fmt"
	"strings"

	"github.com/lumicfg/internal/cache"
	"github.com/lumicfg/internal/config"
	publichandlers "github.com/lumicfg/internal/http/handlers/public"
	"github.com/lumicfg/internal/logger"
	"github.com/lumicfg/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lc"
	}
	redisClient := cache.Client()
	datasheetRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:datasheet", redisPrefix),
		WindowSeconds: cfg.Security.DatasheetRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.DatasheetRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（预渲染的数据表 PDF）
	r.Static("/datasheets", cfg.Datasheet.Dir)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 目录浏览接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/categories/:slug/products", publicHandler.ListProducts)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id/details", publicHandler.GetProduct)
		}

		// 配置器接口
		configure := apiV1.Group("/configure")
		{
			configure.POST("/quote", publicHandler.Quote)
			configure.POST("/save", publicHandler.SaveConfiguration)
			configure.GET("/saved", publicHandler.ListConfigurations)
			configure.GET("/saved/:id", publicHandler.GetConfiguration)
			configure.POST("/datasheet", RateLimitMiddleware(redisClient, datasheetRule, KeyByIP), publicHandler.GenerateDatasheet)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
