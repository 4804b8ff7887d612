package mq

import (
	"context"
)

// TaskExecutor 任务执行接口
// 用于解耦 MQ 层和 Service 层的依赖关系：
// MQ 层只需知道"有个东西能执行任务"，不需要知道具体实现
type TaskExecutor interface {
	// Execute 执行一个任务单元
	// 执行结果（含 job_log 回写）由实现方负责，MQ 层不关心
	Execute(task JobTask)
}

// TaskQueue 任务队列接口
// channel 模式与 kafka 模式各有一个实现
type TaskQueue interface {
	// Enqueue 任务入队
	Enqueue(ctx context.Context, task JobTask) error
	// Start 启动消费循环
	Start()
	// Close 停止消费并释放资源
	Close() error
}

// taskExecutor 存储注入的 TaskExecutor 实现
var taskExecutor TaskExecutor

// SetTaskExecutor 注入 TaskExecutor 实现
// 应在队列 Start 之前调用
func SetTaskExecutor(executor TaskExecutor) {
	taskExecutor = executor
}

// GetTaskExecutor 获取 TaskExecutor 实现
func GetTaskExecutor() TaskExecutor {
	return taskExecutor
}
