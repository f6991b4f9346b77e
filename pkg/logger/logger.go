// Package logger 持有进程级的 zap 日志器，并提供密钥句柄相关的结构化字段。
// 密钥材料 (xprv、种子、助记词) 永远不允许写入日志，只记录句柄与 xpub 指纹。
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log *zap.Logger
)

func init() {
	// Init 之前为 Nop，测试中无需初始化
	Log = zap.NewNop()
}

// Init 按运行环境初始化全局日志器，production 输出 JSON
func Init(env string) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var err error
	Log, err = config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("component", "hdkey")),
	)
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(Log)
}

func Sync() {
	_ = Log.Sync()
}

// Handle 句柄 ID (16 位十六进制)
func Handle(h string) zap.Field {
	return zap.String("handle", h)
}

// Source 密钥来源: default / seed / mnemonic
func Source(s string) zap.Field {
	return zap.String("source", s)
}

// Fingerprint xpub 指纹，默认句柄为空时不输出
func Fingerprint(fp string) zap.Field {
	if fp == "" {
		return zap.Skip()
	}
	return zap.String("fingerprint", fp)
}

// Errno 业务错误码
func Errno(code int) zap.Field {
	return zap.Int("errno", code)
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}
