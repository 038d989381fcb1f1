package main

import (
	https_server "OssLarare/api/http"
	"OssLarare/internal/config"
	"OssLarare/pkg/util/myjwt"
	"OssLarare/pkg/zlog"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()
	zlog.Init(zlog.Options{
		LogPath:    conf.LogConfig.LogPath,
		Level:      conf.LogConfig.Level,
		MaxSizeMB:  conf.LogConfig.MaxSizeMB,
		MaxBackups: conf.LogConfig.MaxBackups,
		MaxAgeDays: conf.LogConfig.MaxAgeDays,
	})
	defer func() { _ = zlog.Sync() }()

	issuer := conf.JwtConfig.Issuer
	if issuer == "" {
		issuer = conf.AppName
	}
	myjwt.Init(conf.JwtConfig.Key, issuer, conf.JwtConfig.ExpireHours)

	// 2. 组装依赖
	srv, err := https_server.NewServer(conf)
	if err != nil {
		zlog.Fatal("服务初始化失败", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.GE,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 3. 启动 HTTP 服务
	go func() {
		zlog.Info("服务器正在启动", zap.String("addr", addr), zap.Bool("tls", conf.MainConfig.TLS))
		var err error
		if conf.MainConfig.TLS {
			err = httpServer.ListenAndServeTLS(conf.MainConfig.CertFile, conf.MainConfig.KeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 4. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("正在关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zlog.Error("服务器关闭超时", zap.Error(err))
	}
	srv.Close()

	zlog.Info("服务器已关闭")
}
