// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 相关的路由
package router

import (
	"warmline_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 相关路由（需要认证）
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	// 事件推送连接入口
	// 客户端通过此路由建立 WebSocket 连接，接收提醒生成 / 温度变化事件
	// 请求示例: ws://host:port/ws/connect?client_id=U123456789
	rg.GET("/ws/connect", handler.WsConnectHandler)
}
