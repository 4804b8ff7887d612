// Package router 提供 HTTP 路由注册
// 本文件定义计划任务触发相关的路由
package router

import (
	"warmline_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCronRoutes 注册计划任务触发路由
// 供外部调度器（crontab / 云调度）调用，用共享密钥而非用户 JWT 认证
func (rt *Router) RegisterCronRoutes(r *gin.Engine) {
	cronGroup := r.Group("/cron")
	cronGroup.Use(middleware.CronAuth())
	{
		cronGroup.POST("/recalculateWarmth", rt.handlers.Cron.TriggerWarmthRecalculation) // 给全量活跃用户排队温度重算
		cronGroup.POST("/generateNudges", rt.handlers.Cron.TriggerNudgeGeneration)        // 给全量活跃用户排队提醒生成
	}
}
