package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wallet-policy-core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Config struct {
	HttpPort string
}

type App struct {
	httpServer *http.Server
}

func New(cfg Config, httpHandler *gin.Engine) *App {
	return &App{
		httpServer: &http.Server{
			Addr:              ":" + cfg.HttpPort,
			Handler:           httpHandler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run 启动服务并阻塞，直到收到关闭信号
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Serve(ctx); err != nil {
		logger.Fatal("HTTP Server failure", zap.Error(err))
	}
}

// Serve 启动 HTTP 服务，ctx 结束后优雅关闭
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP Server", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited properly")
	return nil
}
