// Package router 提供 HTTP 路由注册
// 本文件定义用户设置相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由（需要认证）
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.POST("/updateSettings", rt.handlers.User.UpdateSettings) // 更新提醒配额 / 推送开关 / 时区
	}
}
