package server

import (
	"hdkey-core/internal/handler"
	"hdkey-core/internal/service"
	"hdkey-core/pkg/monitor"
	"hdkey-core/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(keys service.KeyService) *gin.Engine {
	monitor.Init()
	validator.Init()

	r := gin.New()
	r.Use(gin.Recovery(), monitor.PrometheusMiddleware())

	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	keyHandler := handler.NewKeyHandler(keys)
	api := r.Group("/api/v1")
	{
		api.POST("/keys", keyHandler.CreateKey)
		api.GET("/keys/:id", keyHandler.GetKey)
		api.DELETE("/keys/:id", keyHandler.ReleaseKey)
		api.POST("/seeds", keyHandler.NewSeed)
	}

	return r
}
