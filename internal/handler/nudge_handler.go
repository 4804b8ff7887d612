package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// NudgeHandler 提醒请求处理器
type NudgeHandler struct {
	nudgeService service.NudgeService
}

// NewNudgeHandler 构造函数
func NewNudgeHandler(nudgeService service.NudgeService) *NudgeHandler {
	return &NudgeHandler{nudgeService: nudgeService}
}

// GenerateNudges 同步为单个用户生成提醒
// POST /nudge/generateNudges
// 请求体: request.GenerateNudgesRequest
func (h *NudgeHandler) GenerateNudges(c *gin.Context) {
	var req request.GenerateNudgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.nudgeService.GenerateForUser(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// GetPendingNudges 获取未关闭提醒列表
// GET /nudge/getPendingNudges?userId=xxx
func (h *NudgeHandler) GetPendingNudges(c *gin.Context) {
	var req request.OwnListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	list, err := h.nudgeService.GetPendingNudges(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, list)
}

// SnoozeNudge 推迟提醒
// POST /nudge/snoozeNudge
// 请求体: request.SnoozeNudgeRequest
func (h *NudgeHandler) SnoozeNudge(c *gin.Context) {
	var req request.SnoozeNudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.nudgeService.SnoozeNudge(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DismissNudge 忽略提醒
// POST /nudge/dismissNudge
// 请求体: request.NudgeActionRequest
func (h *NudgeHandler) DismissNudge(c *gin.Context) {
	var req request.NudgeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.nudgeService.DismissNudge(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CompleteNudge 完成提醒
// POST /nudge/completeNudge
// 请求体: request.NudgeActionRequest
func (h *NudgeHandler) CompleteNudge(c *gin.Context) {
	var req request.NudgeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.nudgeService.CompleteNudge(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
