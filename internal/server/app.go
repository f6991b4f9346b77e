package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"hdkey-core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type Config struct {
	HttpPort string
	GrpcPort string
}

type App struct {
	httpServer   *http.Server
	httpListener net.Listener
	grpcServer   *grpc.Server
	grpcListener net.Listener
}

func New(cfg Config, httpHandler *gin.Engine, grpcServer *grpc.Server) (*App, error) {
	httpLis, err := net.Listen("tcp", ":"+cfg.HttpPort)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on http port %s: %w", cfg.HttpPort, err)
	}

	grpcLis, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		_ = httpLis.Close()
		return nil, fmt.Errorf("failed to listen on grpc port %s: %w", cfg.GrpcPort, err)
	}

	return &App{
		httpServer:   &http.Server{Handler: httpHandler, ReadHeaderTimeout: 10 * time.Second},
		httpListener: httpLis,
		grpcServer:   grpcServer,
		grpcListener: grpcLis,
	}, nil
}

// HTTPAddr returns the bound HTTP address (useful with port "0")
func (a *App) HTTPAddr() string {
	return a.httpListener.Addr().String()
}

// GRPCAddr returns the bound gRPC address
func (a *App) GRPCAddr() string {
	return a.grpcListener.Addr().String()
}

// Run 启动服务并阻塞，直到 ctx 被取消后优雅退出
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		logger.Info("Starting HTTP Server", zap.String("addr", a.HTTPAddr()))
		if err := a.httpServer.Serve(a.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		logger.Info("Starting gRPC Server", zap.String("addr", a.GRPCAddr()))
		if err := a.grpcServer.Serve(a.grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP Server forced to shutdown", zap.Error(err))
	}
	a.grpcServer.GracefulStop()

	logger.Info("Server exited properly")
	return runErr
}
