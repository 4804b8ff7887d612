// Package mq 实现计划任务队列
// 触发端点把按用户拆分的任务单元入队，消费端逐任务调用业务层，
// 任务之间不共享可变状态
package mq

// 任务名常量
const (
	JobWarmthRecalculate = "warmth_recalculate" // 温度批量重算
	JobNudgeGenerate     = "nudge_generate"     // 提醒生成
)

// JobTask 任务单元：一个用户的一次任务执行
// JobId 关联触发时写入的 job_log 记录
type JobTask struct {
	JobName string `json:"job_name"`
	UserId  string `json:"user_id"`
	JobId   string `json:"job_id"`
}
