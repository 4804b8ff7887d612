package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler 构造函数
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateSettings 更新提醒偏好
// POST /user/updateSettings
// 请求体: request.UpdateSettingsRequest
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userService.UpdateSettings(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
