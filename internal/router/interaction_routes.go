// Package router 提供 HTTP 路由注册
// 本文件定义互动记录相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterInteractionRoutes 注册互动记录相关路由（需要认证）
func (rt *Router) RegisterInteractionRoutes(rg *gin.RouterGroup) {
	interactionGroup := rg.Group("/interaction")
	{
		interactionGroup.POST("/logInteraction", rt.handlers.Interaction.LogInteraction)              // 记录一次互动并实时提温
		interactionGroup.GET("/getRecentInteractions", rt.handlers.Interaction.GetRecentInteractions) // 获取联系人近期互动
	}
}
