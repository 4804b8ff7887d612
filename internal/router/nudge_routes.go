// Package router 提供 HTTP 路由注册
// 本文件定义提醒相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNudgeRoutes 注册提醒相关路由（需要认证）
// 包括提醒生成、待办列表查询和生命周期管理
func (rt *Router) RegisterNudgeRoutes(rg *gin.RouterGroup) {
	nudgeGroup := rg.Group("/nudge")
	{
		nudgeGroup.POST("/generateNudges", rt.handlers.Nudge.GenerateNudges)    // 手动触发本人提醒生成
		nudgeGroup.GET("/getPendingNudges", rt.handlers.Nudge.GetPendingNudges) // 获取待处理提醒列表

		// ===== 生命周期 =====
		nudgeGroup.POST("/snoozeNudge", rt.handlers.Nudge.SnoozeNudge)     // 推迟提醒到指定时间
		nudgeGroup.POST("/dismissNudge", rt.handlers.Nudge.DismissNudge)   // 忽略提醒
		nudgeGroup.POST("/completeNudge", rt.handlers.Nudge.CompleteNudge) // 完成提醒
	}
}
