package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/service"
)

// CronHandler 计划任务触发处理器
// 路由挂载在共享密钥中间件之后，不走用户会话
type CronHandler struct {
	jobService service.JobService
}

// NewCronHandler 构造函数
func NewCronHandler(jobService service.JobService) *CronHandler {
	return &CronHandler{jobService: jobService}
}

// TriggerWarmthRecalculation 触发全量温度重算
// POST /cron/recalculateWarmth
// 任务按用户拆分异步消费，结果回写 job_log，此处只返回排队信息
func (h *CronHandler) TriggerWarmthRecalculation(c *gin.Context) {
	rsp, err := h.jobService.TriggerWarmthRecalculation()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// TriggerNudgeGeneration 触发全量提醒生成
// POST /cron/generateNudges
func (h *CronHandler) TriggerNudgeGeneration(c *gin.Context) {
	rsp, err := h.jobService.TriggerNudgeGeneration()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
