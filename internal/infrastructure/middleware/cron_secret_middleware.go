package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"warmline_server/internal/config"
	"warmline_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CronAuth 计划任务端点认证中间件
// /cron/* 端点由外部调度器调用，不走用户 JWT，改用共享密钥校验
func CronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.GetConfig().CronConfig.Secret
		if secret == "" {
			// 未配置密钥时直接拒绝，避免裸奔
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "计划任务密钥未配置",
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" ||
			subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "计划任务密钥无效",
			})
			return
		}

		c.Next()
	}
}
