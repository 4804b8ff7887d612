package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// InteractionHandler 互动记录请求处理器
type InteractionHandler struct {
	interactionService service.InteractionService
}

// NewInteractionHandler 构造函数
func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// LogInteraction 记录互动
// POST /interaction/logInteraction
// 请求体: request.LogInteractionRequest
// 响应携带加成后的最新温度，前端无需再拉一次联系人
func (h *InteractionHandler) LogInteraction(c *gin.Context) {
	var req request.LogInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.interactionService.LogInteraction(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// GetRecentInteractions 查询联系人最近互动
// GET /interaction/getRecentInteractions?contactId=xxx&windowDays=30
func (h *InteractionHandler) GetRecentInteractions(c *gin.Context) {
	var req request.GetRecentInteractionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	list, err := h.interactionService.GetRecentInteractions(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, list)
}
