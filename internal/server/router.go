package server

import (
	"wallet-policy-core/internal/handler"
	"wallet-policy-core/internal/handler/response"
	"wallet-policy-core/internal/service"
	"wallet-policy-core/pkg/logger"
	"wallet-policy-core/pkg/monitor"
	"wallet-policy-core/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(svc service.PolicyService) *gin.Engine {
	// 0. 初始化监控指标和自定义校验规则
	monitor.Init()
	if err := validator.Init(); err != nil {
		logger.Error("注册校验规则失败", zap.Error(err))
	}

	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()

	// 2. 注册通用中间件
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 4. 注册 API 路由组
	policyHandler := handler.NewPolicyHandler(svc)

	api := r.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, gin.H{"pong": true})
		})

		api.POST("/globals", policyHandler.Globals)
		api.POST("/slip21", policyHandler.Slip21)

		p := api.Group("/policy")
		p.POST("/count", policyHandler.Count)
		p.POST("/inspect", policyHandler.Inspect)
	}

	return r
}
