// Package router 提供 HTTP 路由注册
// 本文件定义温度重算相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWarmthRoutes 注册温度重算相关路由（需要认证）
func (rt *Router) RegisterWarmthRoutes(rg *gin.RouterGroup) {
	warmthGroup := rg.Group("/warmth")
	{
		// 手动触发本人全部联系人的温度重算，同步返回重算结果
		warmthGroup.POST("/recalculate", rt.handlers.Warmth.Recalculate)
	}
}
