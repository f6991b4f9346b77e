//go:build !cgo

package main

import "hdkey-core/pkg/logger"

func main() {
	logger.Init("development")
	logger.Fatal("libhdkey 需要 cgo: 请使用 CGO_ENABLED=1 go build -buildmode=c-shared 构建")
}
