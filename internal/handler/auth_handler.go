// Package handler 提供 HTTP 请求处理器
// 本文件处理注册、登录与 Token 刷新
package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// AuthHandler 认证请求处理器
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler 构造函数
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register 用户注册
// POST /auth/register
// 请求体: request.RegisterRequest
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.userService.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// Login 密码登录
// POST /auth/login
// 请求体: request.LoginRequest
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.userService.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// RefreshToken 刷新双 Token
// POST /auth/refresh
// 请求体: request.RefreshTokenRequest
//
// 单点互踢机制:
//   - 登录时在 Redis 中存储最新 Token ID
//   - 其他设备登录会覆盖旧的 Token ID
//   - 使用旧 Token ID 刷新会被拒绝
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.userService.RefreshToken(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
