package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warmline_server/internal/config"
	dao "warmline_server/internal/dao/mysql"
	myredis "warmline_server/internal/dao/redis"
	ws "warmline_server/internal/gateway/websocket"
	"warmline_server/internal/handler"
	"warmline_server/internal/https_server"
	"warmline_server/internal/infrastructure/logger"
	"warmline_server/internal/infrastructure/mq"
	"warmline_server/internal/service"
	"warmline_server/pkg/util/jwt"
	"warmline_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化雪花算法节点
	snowflake.Init()

	// 4. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 5. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 6. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 7. 初始化 Service 层 (依赖注入)
	// 必须先于任务队列启动，确保消费者拿到任务执行器
	service.InitServices(dao.Repos, myredis.GetCacheService())
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化任务队列 (channel 或 kafka)
	mq.Init()

	// 9. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 10. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听，等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	// 先停收新请求，再关任务队列和推送连接
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown error", zap.Error(err))
	}
	mq.Shutdown()
	ws.Shutdown()

	zap.L().Info("服务器已关闭")
}
