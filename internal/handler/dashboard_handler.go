package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// DashboardHandler 仪表盘请求处理器
type DashboardHandler struct {
	contactService service.ContactService
}

// NewDashboardHandler 构造函数
func NewDashboardHandler(contactService service.ContactService) *DashboardHandler {
	return &DashboardHandler{contactService: contactService}
}

// GetStats 获取仪表盘统计
// GET /dashboard/getStats?userId=xxx
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var req request.OwnListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.contactService.GetDashboardStats(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
