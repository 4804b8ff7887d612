// Package router 提供 HTTP 路由注册
// 本文件定义路由管理器，是路由注册的入口，聚合所有子模块的路由
package router

import (
	"warmline_server/internal/handler"
	"warmline_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
// 持有 Handlers 聚合，按模块注册路由组
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 分三类：公开的认证路由、JWT 保护的业务路由、共享密钥保护的计划任务路由
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 公开接口（注册 / 登录 / 刷新 Token）
	rt.RegisterAuthRoutes(r)

	// 业务接口统一走 JWT 认证
	authed := r.Group("")
	authed.Use(middleware.JWTAuth())
	{
		rt.RegisterUserRoutes(authed)        // 用户设置路由
		rt.RegisterContactRoutes(authed)     // 联系人路由
		rt.RegisterInteractionRoutes(authed) // 互动记录路由
		rt.RegisterWarmthRoutes(authed)      // 温度重算路由
		rt.RegisterNudgeRoutes(authed)       // 提醒路由
		rt.RegisterDashboardRoutes(authed)   // 仪表盘路由
		rt.RegisterWebSocketRoutes(authed)   // WebSocket 路由
	}

	// 计划任务接口由外部调度器调用，走共享密钥认证
	rt.RegisterCronRoutes(r)
}
