package main

import (
	"wallet-policy-core/internal/server"
	"wallet-policy-core/internal/service"
	"wallet-policy-core/pkg/config"
	"wallet-policy-core/pkg/logger"
	"wallet-policy-core/pkg/monitor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 0. 初始化 Config
	config.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env, config.Global.App.LogLevel)
	defer logger.Sync()

	if config.Global.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 业务服务 (指标在路由初始化时注册)
	monitor.Init()
	policyService := service.NewPolicyService(monitor.Policy)

	// 3. HTTP Router
	r := server.NewHTTPRouter(policyService)

	// 4. 启动应用 (阻塞直到收到退出信号)
	app := server.New(server.Config{HttpPort: config.Global.App.HttpPort}, r)
	logger.Info("policy-server starting",
		zap.String("env", config.Global.App.Env),
		zap.String("default_network", config.Global.Harness.Network))
	app.Run()

	logger.Info("系统已退出")
}
