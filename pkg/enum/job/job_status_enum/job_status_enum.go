// Package job_status_enum 定义计划任务运行状态枚举
package job_status_enum

const (
	STARTED   int8 = 0 // 已开始
	COMPLETED int8 = 1 // 已完成
	FAILED    int8 = 2 // 失败
)
