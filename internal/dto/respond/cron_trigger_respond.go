package respond

// CronTriggerRespond 计划任务触发响应
// 任务异步消费，结果回写 job_log，此处只返回排队信息
// 使用位置:
//   - handler/cron_handler.go
type CronTriggerRespond struct {
	JobId       string `json:"job_id"`
	UsersQueued int    `json:"users_queued"`
}
