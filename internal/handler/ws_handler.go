// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 事件推送连接
package handler

import (
	"github.com/gin-gonic/gin"

	ws "warmline_server/internal/gateway/websocket"
	"warmline_server/pkg/errorx"
)

// WsConnectHandler 建立事件推送连接（升级 HTTP 连接为 WebSocket）
// GET /ws/connect?client_id=xxx
// 连接后服务端单向推送提醒/温度事件，客户端无需发送业务消息
func WsConnectHandler(c *gin.Context) {
	clientId := c.Query("client_id")
	if clientId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "client_id 不能为空"))
		return
	}
	ws.NewClientInit(c, clientId)
}
