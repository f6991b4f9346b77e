package main

import (
	"context"
	"os/signal"
	"syscall"

	handler_grpc "hdkey-core/internal/handler/grpc"
	"hdkey-core/internal/model"
	"hdkey-core/internal/server"
	"hdkey-core/internal/service"
	"hdkey-core/internal/service/mq"

	"hdkey-core/pkg/config"
	"hdkey-core/pkg/database"
	"hdkey-core/pkg/handle"
	"hdkey-core/pkg/hdkey"
	"hdkey-core/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	_ "hdkey-core/docs/swagger"
)

// @title HD Key Server API
// @version 1.0
// @description HD private key handle factory

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()
	cfg := config.Global

	// 1. 初始化 Logger
	logger.Init(cfg.App.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	network, err := hdkey.NetworkByName(cfg.Key.Network)
	if err != nil {
		logger.Fatal("无效的网络配置", zap.Error(err))
	}

	opts := service.Options{
		Network:     network,
		SeedBits:    cfg.Key.SeedBits,
		Fingerprint: cfg.Key.Fingerprint,
		Topic:       cfg.Events.Topic,
	}

	// 2. 可选: 密钥账本 (PostgreSQL)
	if cfg.DB.Enabled {
		db, err := database.ConnectPostgres(cfg.DB.DSN())
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		if cfg.App.Env == "development" {
			logger.Info("开发环境: 自动迁移 Schema (GORM AutoMigrate)...")
			if err := db.AutoMigrate(model.AllModels()...); err != nil {
				logger.Fatal("数据库自动迁移失败", zap.Error(err))
			}
		} else {
			logger.Info("生产环境: 跳过 AutoMigrate，请使用 migrate 工具管理 Schema")
		}
		opts.Ledger = service.NewSQLKeyLedger(db)
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()
	}

	// 3. 可选: Redis
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Redis 连接失败", zap.Error(err))
		}
		defer rdb.Close()
	}

	// 4. 事件队列
	producer, err := mq.NewProducer(cfg.Events.MQType, rdb, cfg.Kafka.Brokers)
	if err != nil {
		logger.Fatal("初始化消息队列失败", zap.Error(err))
	}
	if producer != nil {
		logger.Info("密钥事件已启用", zap.String("mq_type", cfg.Events.MQType), zap.String("topic", cfg.Events.Topic))
		opts.Producer = producer
		defer producer.Close()
	}

	// 5. 核心服务
	registry := handle.NewRegistry()
	keyService, err := service.NewHDKeyService(registry, opts)
	if err != nil {
		logger.Fatal("初始化 KeyService 失败", zap.Error(err))
	}

	// 6. HTTP + gRPC
	r := server.NewHTTPRouter(keyService)
	grpcServer := grpc.NewServer()
	handler_grpc.RegisterKeyFactoryServer(grpcServer, handler_grpc.NewKeyHandler(keyService))

	app, err := server.New(server.Config{
		HttpPort: cfg.App.HttpPort,
		GrpcPort: cfg.App.GrpcPort,
	}, r, grpcServer)
	if err != nil {
		logger.Fatal("应用启动失败", zap.Error(err))
	}

	// 运行 (阻塞)
	if err := app.Run(ctx); err != nil {
		logger.Error("服务异常退出", zap.Error(err))
	}
	logger.Info("系统已退出", zap.Int("live_handles", registry.Len()))
}
