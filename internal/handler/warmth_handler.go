package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// WarmthHandler 温度重算请求处理器
type WarmthHandler struct {
	warmthService service.WarmthService
}

// NewWarmthHandler 构造函数
func NewWarmthHandler(warmthService service.WarmthService) *WarmthHandler {
	return &WarmthHandler{warmthService: warmthService}
}

// Recalculate 同步重算单个用户的联系人温度
// POST /warmth/recalculate
// 请求体: request.RecalculateWarmthRequest
// 与 /cron/* 的区别：此端点同步执行并直接返回计数，供前端手动刷新
func (h *WarmthHandler) Recalculate(c *gin.Context) {
	var req request.RecalculateWarmthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.warmthService.RecalculateAll(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
