// Package router 提供 HTTP 路由注册
// 本文件定义仪表盘相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes 注册仪表盘相关路由（需要认证）
func (rt *Router) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	dashboardGroup := rg.Group("/dashboard")
	{
		// 各温度状态联系人计数、平均温度和待处理提醒数
		dashboardGroup.GET("/getStats", rt.handlers.Dashboard.GetStats)
	}
}
